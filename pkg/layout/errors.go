package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange signals an index outside the current sequence. It
	// points at a view/coordinator desynchronisation, never at user input.
	ErrIndexOutOfRange = errors.New("layout: index out of range")
	// ErrDuplicateID is returned when a seed reuses an element id.
	ErrDuplicateID = errors.New("layout: duplicate element id")
	// ErrEmptyID is returned when a seed element has no id.
	ErrEmptyID = errors.New("layout: element id is required")
)

// IndexError reports which operation received an out-of-range index.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("layout: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
