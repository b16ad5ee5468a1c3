package render

// RenderOptions describe per-request presentation settings. Renderers ignore
// fields that do not apply to their output.
type RenderOptions struct {
	// Width is the wrap width for terminal output. Zero selects the renderer
	// default.
	Width int
}
