// Package dnd coordinates drag-and-drop gestures against a layout.Store.
//
// A gesture runs start -> hover* -> drop|cancel and only one may be in flight.
// Two source kinds exist and they commit differently on purpose:
//
//   - SourceTemplate (palette drag): hovers only record the target; Drop
//     inserts exactly once, Cancel inserts nothing.
//   - SourceExisting (canvas drag): each hover over a different slot issues
//     one MoveTo immediately; Drop and Cancel simply end the gesture.
//
// Events arriving in the wrong state are discarded and reported as
// ErrInvalidGestureState. A move the store rejects aborts the gesture and
// leaves the sequence untouched.
package dnd
