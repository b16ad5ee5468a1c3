// Package tui is the interactive terminal builder. The palette and the canvas
// share one screen; keyboard gestures stand in for pointer drags.
package tui
