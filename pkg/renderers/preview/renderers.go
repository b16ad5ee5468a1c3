package preview

import (
	"context"
	"encoding/json"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Format names registered by Register.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

// Renderers returns one renderer per output format, all backed by v.
func (v *View) Renderers() []render.Renderer {
	return []render.Renderer{
		htmlRenderer{v},
		markdownRenderer{v},
		terminalRenderer{v},
		jsonRenderer{v},
	}
}

// Register adds every preview format to reg along with short aliases.
func (v *View) Register(reg *render.Registry) error {
	for _, r := range v.Renderers() {
		if err := reg.Register(r); err != nil {
			return err
		}
	}
	aliases := map[string]string{"md": FormatMarkdown, "term": FormatTerminal}
	for alias, name := range aliases {
		if err := reg.Alias(alias, name); err != nil {
			return err
		}
	}
	return nil
}

type htmlRenderer struct{ v *View }

func (r htmlRenderer) Name() string        { return FormatHTML }
func (r htmlRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r htmlRenderer) Render(ctx context.Context, snap model.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.v.HTML(snap)
}

type markdownRenderer struct{ v *View }

func (r markdownRenderer) Name() string        { return FormatMarkdown }
func (r markdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

func (r markdownRenderer) Render(ctx context.Context, snap model.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(r.v.Markdown(snap)), nil
}

type terminalRenderer struct{ v *View }

func (r terminalRenderer) Name() string        { return FormatTerminal }
func (r terminalRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r terminalRenderer) Render(ctx context.Context, snap model.Snapshot, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.v.Terminal(snap, options.Width)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

type jsonRenderer struct{ v *View }

func (r jsonRenderer) Name() string        { return FormatJSON }
func (r jsonRenderer) ContentType() string { return "application/json" }

func (r jsonRenderer) Render(ctx context.Context, snap model.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(r.v.Project(snap), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(payload, '\n'), nil
}
