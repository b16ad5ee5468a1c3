// Package formbuilder exposes the embedded assets of the form builder and a
// one-call entry point for rendering a form from a list of edits.
package formbuilder

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formbuilder/pkg/catalog"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

// EmbeddedTemplates exposes the built-in preview templates so callers can
// reuse or extend them without importing the preview package directly.
func EmbeddedTemplates() fs.FS {
	return preview.TemplatesFS()
}

// EmbeddedCatalog exposes the bundled palette definition files.
func EmbeddedCatalog() fs.FS {
	return catalog.BundleFS()
}

// Edit is applied to a workspace canvas by Render.
type Edit func(*workspace.Workspace) error

// Add drops the catalog element typ at index. A negative index appends.
func Add(typ string, index int) Edit {
	return func(ws *workspace.Workspace) error {
		_, err := ws.AddElement(typ, index)
		return err
	}
}

// Move drags the element at from to to.
func Move(from, to int) Edit {
	return func(ws *workspace.Workspace) error {
		return ws.MoveElement(from, to)
	}
}

// Render builds a workspace, applies edits in order and renders the result in
// the named format (html, markdown, terminal or json).
func Render(ctx context.Context, format string, edits []Edit, options ...workspace.Option) ([]byte, error) {
	ws, err := workspace.New(options...)
	if err != nil {
		return nil, err
	}
	defer ws.Close()

	for _, edit := range edits {
		if err := edit(ws); err != nil {
			return nil, err
		}
	}
	return ws.Render(ctx, format, render.RenderOptions{})
}
