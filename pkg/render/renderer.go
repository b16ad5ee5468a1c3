package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Renderer converts a snapshot into a byte representation (HTML, Markdown,
// etc.). Renderers only read the snapshot.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, snap model.Snapshot, options RenderOptions) ([]byte, error)
}
