// Package preview renders a read-only projection of a layout snapshot as an
// HTML form, a Markdown outline or a styled terminal document.
//
// The view keeps no copy of the element sequence. Callers pass the snapshot to
// render, usually the one most recently published by the layout store, so the
// preview always follows the store order without refreshing.
package preview
