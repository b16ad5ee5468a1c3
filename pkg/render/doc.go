// Package render defines the renderer contract for snapshot outputs and a
// registry to look renderers up by format name.
package render
