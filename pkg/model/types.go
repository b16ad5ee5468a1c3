package model

// Canonical element type tags shipped with the default catalog. Catalog bundles
// may introduce additional tags; renderers fall back gracefully on unknown ones.
const (
	TypeText     = "text"
	TypeEmail    = "email"
	TypeSelect   = "select"
	TypeCheckbox = "checkbox"
	TypeTextArea = "textarea"
	TypeToggle   = "toggle"
	TypeRadio    = "radio"
)

// ElementTemplate describes an element kind offered by the palette. Templates
// are never mutated after the catalog is built; callers receive copies.
type ElementTemplate struct {
	Type        string   `json:"type" yaml:"type"`
	Label       string   `json:"label" yaml:"label"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Group       string   `json:"group,omitempty" yaml:"group,omitempty"`
}

// Clone returns a deep copy of the template.
func (t ElementTemplate) Clone() ElementTemplate {
	t.Options = cloneStrings(t.Options)
	return t
}

// PlacedElement is one field in a form's canonical sequence. ID is assigned at
// insertion and stays fixed for the element's lifetime; reorders only change
// its position.
type PlacedElement struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
}

// Clone returns a deep copy of the element.
func (e PlacedElement) Clone() PlacedElement {
	e.Options = cloneStrings(e.Options)
	return e
}

// Materialize builds a placed element from a template, copying every default
// and stamping the supplied id. A template without a label gets one derived
// from its type tag.
func Materialize(tmpl ElementTemplate, id string) PlacedElement {
	label := tmpl.Label
	if label == "" {
		label = DefaultLabel(tmpl.Type)
	}
	return PlacedElement{
		ID:          id,
		Type:        tmpl.Type,
		Label:       label,
		Placeholder: tmpl.Placeholder,
		Required:    tmpl.Required,
		Options:     cloneStrings(tmpl.Options),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
