package template

import (
	"io"
)

// TemplateRenderer is the seam views render through. The pongo subpackage
// provides the default implementation; callers may inject their own.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
