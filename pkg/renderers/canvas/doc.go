// Package canvas draws the editable form canvas as a grid of lipgloss cards and
// turns pointer or keyboard interactions on that grid into drag gestures.
//
// Gesture indices always refer to the snapshot the view rendered last, which is
// what the user is looking at.
package canvas
