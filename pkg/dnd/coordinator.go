package dnd

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger routes absorbed errors and aborted gestures to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithInsertPolicy selects where dropped templates land.
func WithInsertPolicy(policy InsertPolicy) Option {
	return func(c *Coordinator) {
		c.policy = policy
	}
}

// WithObserver registers fn for gesture lifecycle events.
func WithObserver(fn func(Event)) Option {
	return func(c *Coordinator) {
		c.observer = fn
	}
}

// Coordinator turns gesture input into store mutations. It tracks at most one
// gesture and always resolves indices against the last snapshot the store
// published.
//
// Reorders move live: every hover over a different slot issues one MoveTo, so
// the canvas makes room while the user drags. Insertions commit on drop only,
// so a palette drag never perturbs the canvas until it lands.
type Coordinator struct {
	store       *layout.Store
	snapshot    model.Snapshot
	state       State
	gesture     Gesture
	policy      InsertPolicy
	logger      *zap.Logger
	observer    func(Event)
	unsubscribe func()
}

// New binds a coordinator to store.
func New(store *layout.Store, options ...Option) *Coordinator {
	c := &Coordinator{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.snapshot = store.Snapshot()
	c.unsubscribe = store.Subscribe(c.onSnapshot)
	return c
}

// Close detaches the coordinator from its store.
func (c *Coordinator) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// State reports whether a gesture is in flight.
func (c *Coordinator) State() State {
	return c.state
}

// Gesture returns the in-flight gesture, if any.
func (c *Coordinator) Gesture() (Gesture, bool) {
	if c.state != StateDragging {
		return Gesture{}, false
	}
	g := c.gesture
	g.Template = g.Template.Clone()
	return g, true
}

// Snapshot returns the snapshot the coordinator indexes against.
func (c *Coordinator) Snapshot() model.Snapshot {
	return c.snapshot
}

// StartGesture moves Idle to Dragging. Starting while a gesture is active
// returns ErrGestureInProgress and keeps the active gesture. A canvas source
// must address a slot in the last published snapshot.
func (c *Coordinator) StartGesture(src Source) error {
	if c.state == StateDragging {
		c.logger.Debug("dnd: start ignored, gesture in progress",
			zap.Stringer("active", c.gesture.Kind),
			zap.Stringer("requested", src.Kind),
		)
		return ErrGestureInProgress
	}

	g := Gesture{Kind: src.Kind}
	switch src.Kind {
	case SourceTemplate:
		if strings.TrimSpace(src.Template.Type) == "" {
			return ErrInvalidSource
		}
		g.Template = src.Template.Clone()
	case SourceExisting:
		el, ok := c.snapshot.At(src.Index)
		if !ok {
			err := &layout.IndexError{Op: "grab", Index: src.Index, Len: c.snapshot.Len()}
			c.logger.Warn("dnd: grab outside rendered sequence",
				zap.Int("index", src.Index),
				zap.Int("len", c.snapshot.Len()),
				zap.Uint64("version", c.snapshot.Version()),
			)
			return err
		}
		g.ElementID = el.ID
		g.Origin = src.Index
		g.Current = src.Index
	default:
		return ErrInvalidSource
	}

	c.state = StateDragging
	c.gesture = g
	c.emit(Event{Kind: EventStart})
	return nil
}

// Hover records the location under the pointer. For template gestures this
// only remembers the target. For reorders a target different from the
// element's current slot issues one MoveTo; if the store rejects the move the
// gesture is aborted and the error returned.
func (c *Coordinator) Hover(target Target) error {
	if c.state != StateDragging {
		c.logger.Debug("dnd: stray hover discarded", zap.Stringer("target", target))
		return ErrInvalidGestureState
	}

	c.gesture.Target = target
	c.gesture.Hovered = true

	if c.gesture.Kind != SourceExisting {
		c.emit(Event{Kind: EventHover})
		return nil
	}

	to := target.Index
	if target.End {
		to = c.snapshot.Len() - 1
	}
	if to == c.gesture.Current {
		c.emit(Event{Kind: EventHover})
		return nil
	}

	from := c.gesture.Current
	if err := c.store.MoveTo(from, to); err != nil {
		c.abort(err, zap.Int("from", from), zap.Int("to", to))
		return err
	}
	c.gesture.Current = to
	c.emit(Event{Kind: EventMove})
	return nil
}

// Drop completes the gesture. A template gesture inserts exactly once and
// returns the new element with ok set; a reorder gesture already moved live and
// just ends.
func (c *Coordinator) Drop() (el model.PlacedElement, ok bool, err error) {
	if c.state != StateDragging {
		c.logger.Debug("dnd: stray drop discarded")
		return model.PlacedElement{}, false, ErrInvalidGestureState
	}

	g := c.gesture
	c.reset()

	if g.Kind != SourceTemplate {
		c.emitFor(g, Event{Kind: EventDrop})
		return model.PlacedElement{}, false, nil
	}

	index := c.dropIndex(g)
	el = c.store.InsertAt(g.Template, index)
	inserted := el.Clone()
	c.emitFor(g, Event{Kind: EventDrop, Inserted: &inserted})
	return el, true, nil
}

// Cancel ends the gesture without touching the store. Moves already applied
// by a reorder gesture stay in place.
func (c *Coordinator) Cancel() error {
	if c.state != StateDragging {
		c.logger.Debug("dnd: stray cancel discarded")
		return ErrInvalidGestureState
	}
	g := c.gesture
	c.reset()
	c.emitFor(g, Event{Kind: EventCancel})
	return nil
}

func (c *Coordinator) dropIndex(g Gesture) int {
	n := c.snapshot.Len()
	if c.policy == InsertAppend || !g.Hovered || g.Target.End {
		return n
	}
	return g.Target.Index
}

func (c *Coordinator) onSnapshot(snap model.Snapshot) {
	c.snapshot = snap
	if c.state != StateDragging || c.gesture.Kind != SourceExisting {
		return
	}
	if idx := snap.IndexOf(c.gesture.ElementID); idx >= 0 {
		c.gesture.Current = idx
	}
}

func (c *Coordinator) abort(err error, fields ...zap.Field) {
	g := c.gesture
	c.reset()
	fields = append(fields,
		zap.Stringer("gesture", g.Kind),
		zap.String("element", g.ElementID),
		zap.Int("len", c.snapshot.Len()),
		zap.Uint64("version", c.snapshot.Version()),
		zap.Error(err),
	)
	c.logger.Warn("dnd: gesture aborted", fields...)
	c.emitFor(g, Event{Kind: EventAbort, Err: err})
}

func (c *Coordinator) reset() {
	c.state = StateIdle
	c.gesture = Gesture{}
}

func (c *Coordinator) emit(evt Event) {
	c.emitFor(c.gesture, evt)
}

func (c *Coordinator) emitFor(g Gesture, evt Event) {
	if c.observer == nil {
		return
	}
	evt.Gesture = g
	evt.Gesture.Template = g.Template.Clone()
	c.observer(evt)
}
