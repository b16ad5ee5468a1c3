package dnd

import (
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// State is the coordinator's gesture state.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// SourceKind tells insertions (palette templates) apart from reorders
// (elements already on the canvas).
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceTemplate
	SourceExisting
)

func (k SourceKind) String() string {
	switch k {
	case SourceTemplate:
		return "template"
	case SourceExisting:
		return "existing"
	default:
		return "none"
	}
}

// Source identifies what a gesture picked up.
type Source struct {
	Kind     SourceKind
	Template model.ElementTemplate
	Index    int
}

// FromTemplate starts an insertion gesture for a palette template.
func FromTemplate(tmpl model.ElementTemplate) Source {
	return Source{Kind: SourceTemplate, Template: tmpl.Clone()}
}

// FromCanvas starts a reorder gesture for the element at index in the last
// published snapshot.
func FromCanvas(index int) Source {
	return Source{Kind: SourceExisting, Index: index}
}

// Target is a hover location on the canvas: a slot index or the empty space
// after the last slot.
type Target struct {
	Index int
	End   bool
}

// AtIndex targets the slot currently rendered at index.
func AtIndex(index int) Target {
	return Target{Index: index}
}

// AtEnd targets empty canvas space past the last slot.
func AtEnd() Target {
	return Target{End: true}
}

func (t Target) String() string {
	if t.End {
		return "end"
	}
	return strconv.Itoa(t.Index)
}

// Gesture describes the in-flight gesture.
type Gesture struct {
	Kind     SourceKind
	Template model.ElementTemplate
	// ElementID, Origin and Current track a reorder: the dragged element, the
	// slot it was picked up from and the slot it occupies now.
	ElementID string
	Origin    int
	Current   int
	// Target is the last hovered location; Hovered is false until the first
	// hover event.
	Target  Target
	Hovered bool
}

// InsertPolicy decides where a dropped template lands.
type InsertPolicy int

const (
	// InsertAtTarget inserts at the hovered slot, appending when nothing or the
	// empty canvas space was hovered.
	InsertAtTarget InsertPolicy = iota
	// InsertAppend always appends, ignoring hover targets.
	InsertAppend
)

// EventKind labels gesture lifecycle events reported to observers.
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventHover
	EventMove
	EventDrop
	EventCancel
	EventAbort
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventHover:
		return "hover"
	case EventMove:
		return "move"
	case EventDrop:
		return "drop"
	case EventCancel:
		return "cancel"
	case EventAbort:
		return "abort"
	default:
		return "event(" + strconv.Itoa(int(k)) + ")"
	}
}

// Event is reported to the observer after each lifecycle transition. Inserted
// is set on template drops; Err is set on aborts.
type Event struct {
	Kind     EventKind
	Gesture  Gesture
	Inserted *model.PlacedElement
	Err      error
}
