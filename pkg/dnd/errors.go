package dnd

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/layout"
)

var (
	// ErrInvalidGestureState is returned when a lifecycle event arrives in a
	// state that does not accept it. The event is discarded.
	ErrInvalidGestureState = errors.New("dnd: invalid gesture state")
	// ErrGestureInProgress is returned when a gesture starts while another is
	// still active. The active gesture is kept.
	ErrGestureInProgress = fmt.Errorf("%w: gesture already in progress", ErrInvalidGestureState)
	// ErrInvalidSource is returned for sources without a kind or with a
	// template lacking a type tag.
	ErrInvalidSource = errors.New("dnd: invalid gesture source")
	// ErrIndexOutOfRange aliases the store sentinel so callers can match it
	// without importing layout.
	ErrIndexOutOfRange = layout.ErrIndexOutOfRange
)
