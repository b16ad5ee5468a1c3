package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// maxIDAttempts bounds how often the generator is asked for a fresh id before
// the store disambiguates the last candidate itself.
const maxIDAttempts = 16

// Listener receives every committed snapshot.
type Listener func(model.Snapshot)

// Option configures a Store.
type Option func(*config)

type config struct {
	seed []model.PlacedElement
	ids  IDGenerator
}

// WithElements seeds the store with an initial sequence. Seed ids must be
// non-empty and unique.
func WithElements(elements ...model.PlacedElement) Option {
	return func(cfg *config) {
		cfg.seed = append(cfg.seed, elements...)
	}
}

// WithIDGenerator overrides the default sequence generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.ids = gen
		}
	}
}

type subscription struct {
	id int
	fn Listener
}

// Store owns the canonical ordered sequence of placed elements for one form.
// Every committed mutation produces a new immutable snapshot that is handed to
// all listeners before the mutating call returns.
//
// A Store is not safe for concurrent use; drive it from a single event loop.
type Store struct {
	elements  []model.PlacedElement
	version   uint64
	snapshot  model.Snapshot
	ids       IDGenerator
	issued    map[string]struct{}
	listeners []subscription
	nextSub   int
}

// NewStore builds a store from the supplied options.
func NewStore(options ...Option) (*Store, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.ids == nil {
		cfg.ids = NewSequence("el-")
	}

	s := &Store{
		ids:    cfg.ids,
		issued: make(map[string]struct{}, len(cfg.seed)),
	}
	for idx, el := range cfg.seed {
		id := strings.TrimSpace(el.ID)
		if id == "" {
			return nil, fmt.Errorf("%w (seed position %d)", ErrEmptyID, idx)
		}
		if _, exists := s.issued[id]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateID, id)
		}
		el = el.Clone()
		el.ID = id
		s.issued[id] = struct{}{}
		s.elements = append(s.elements, el)
	}
	s.snapshot = model.NewSnapshot(s.version, s.elements)
	return s, nil
}

// MustNewStore panics when NewStore fails.
func MustNewStore(options ...Option) *Store {
	s, err := NewStore(options...)
	if err != nil {
		panic(err)
	}
	return s
}

// Snapshot returns the last committed snapshot.
func (s *Store) Snapshot() model.Snapshot {
	return s.snapshot
}

// Len reports the current sequence length.
func (s *Store) Len() int {
	return len(s.elements)
}

// Version reports the number of committed mutations.
func (s *Store) Version() uint64 {
	return s.version
}

// Subscribe registers fn for every future committed snapshot. Listeners run
// in subscription order. The returned function removes the listener and is
// safe to call more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// InsertAt materialises tmpl with a fresh id and inserts it at index. Indices
// outside [0, Len] are clamped, since drop coordinates past either end are an
// expected artefact of pointer input. The new element is returned.
func (s *Store) InsertAt(tmpl model.ElementTemplate, index int) model.PlacedElement {
	index = clamp(index, 0, len(s.elements))

	el := model.Materialize(tmpl, s.issueID())

	s.elements = append(s.elements, model.PlacedElement{})
	copy(s.elements[index+1:], s.elements[index:])
	s.elements[index] = el

	s.commit()
	return el.Clone()
}

// Append inserts tmpl at the end of the sequence.
func (s *Store) Append(tmpl model.ElementTemplate) model.PlacedElement {
	return s.InsertAt(tmpl, len(s.elements))
}

// MoveTo relocates the element at from so that it ends up at position to.
// to is read in the post-removal index space, i.e. it is the element's final
// position. Both indices must address existing slots. from == to is a no-op
// and publishes nothing.
func (s *Store) MoveTo(from, to int) error {
	n := len(s.elements)
	if from < 0 || from >= n {
		return &IndexError{Op: "move from", Index: from, Len: n}
	}
	if to < 0 || to >= n {
		return &IndexError{Op: "move to", Index: to, Len: n}
	}
	if from == to {
		return nil
	}

	moved := s.elements[from]
	if from < to {
		copy(s.elements[from:to], s.elements[from+1:to+1])
	} else {
		copy(s.elements[to+1:from+1], s.elements[to:from])
	}
	s.elements[to] = moved

	s.commit()
	return nil
}

func (s *Store) issueID() string {
	var candidate string
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate = strings.TrimSpace(s.ids.NextID())
		if candidate == "" {
			continue
		}
		if _, taken := s.issued[candidate]; !taken {
			s.issued[candidate] = struct{}{}
			return candidate
		}
	}

	if candidate == "" {
		candidate = "el"
	}
	for n := len(s.issued) + 1; ; n++ {
		id := candidate + "~" + strconv.Itoa(n)
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id
		}
	}
}

func (s *Store) commit() {
	s.version++
	s.snapshot = model.NewSnapshot(s.version, s.elements)
	s.publish(s.snapshot)
}

func (s *Store) publish(snap model.Snapshot) {
	if len(s.listeners) == 0 {
		return
	}
	listeners := append([]subscription(nil), s.listeners...)
	for _, sub := range listeners {
		// A listener that mutated the store has already fanned out a newer
		// snapshot; delivering this one afterwards would roll observers back.
		if s.version != snap.Version() {
			return
		}
		sub.fn(snap)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
