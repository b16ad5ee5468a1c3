// Package workspace wires the catalog, layout store, drag coordinator and both
// views into one builder session.
//
// Every observer of the session reads the same published snapshot: the canvas
// re-renders from it, the preview projects it and OnChange callbacks receive it.
package workspace
