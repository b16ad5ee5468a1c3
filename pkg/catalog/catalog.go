package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrEmptyType is returned when a template has no type tag.
	ErrEmptyType = errors.New("catalog: template type is required")
	// ErrDuplicateType is returned when two templates share a type tag.
	ErrDuplicateType = errors.New("catalog: duplicate template")
	// ErrUnknownType is returned by MustLookup callers that need an error value.
	ErrUnknownType = errors.New("catalog: unknown template")
)

// Catalog is a read-only registry of element templates. It is built once and
// never mutated, so concurrent readers need no synchronisation.
type Catalog struct {
	templates []model.ElementTemplate
	byType    map[string]int
}

// New builds a catalog preserving the supplied order. Type tags are trimmed
// and must be unique.
func New(templates ...model.ElementTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make([]model.ElementTemplate, 0, len(templates)),
		byType:    make(map[string]int, len(templates)),
	}
	for idx, tmpl := range templates {
		tmpl = tmpl.Clone()
		tmpl.Type = strings.TrimSpace(tmpl.Type)
		if tmpl.Type == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrEmptyType, idx)
		}
		if _, exists := c.byType[tmpl.Type]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateType, tmpl.Type)
		}
		if strings.TrimSpace(tmpl.Label) == "" {
			tmpl.Label = model.DefaultLabel(tmpl.Type)
		}
		c.byType[tmpl.Type] = len(c.templates)
		c.templates = append(c.templates, tmpl)
	}
	return c, nil
}

// MustNew panics when New fails. Useful for init-time wiring.
func MustNew(templates ...model.ElementTemplate) *Catalog {
	c, err := New(templates...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns a copy of the template registered under typ.
func (c *Catalog) Lookup(typ string) (model.ElementTemplate, bool) {
	if c == nil {
		return model.ElementTemplate{}, false
	}
	idx, ok := c.byType[strings.TrimSpace(typ)]
	if !ok {
		return model.ElementTemplate{}, false
	}
	return c.templates[idx].Clone(), true
}

// Get is Lookup with an error for callers that propagate failures.
func (c *Catalog) Get(typ string) (model.ElementTemplate, error) {
	tmpl, ok := c.Lookup(typ)
	if !ok {
		return model.ElementTemplate{}, fmt.Errorf("%w %q", ErrUnknownType, typ)
	}
	return tmpl, nil
}

// MustLookup panics if the template is missing.
func (c *Catalog) MustLookup(typ string) model.ElementTemplate {
	tmpl, err := c.Get(typ)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Templates returns copies of every template in palette order.
func (c *Catalog) Templates() []model.ElementTemplate {
	if c == nil {
		return nil
	}
	out := make([]model.ElementTemplate, len(c.templates))
	for i, tmpl := range c.templates {
		out[i] = tmpl.Clone()
	}
	return out
}

// Types lists the registered type tags in palette order.
func (c *Catalog) Types() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.templates))
	for i, tmpl := range c.templates {
		out[i] = tmpl.Type
	}
	return out
}

// Groups returns group names in first-seen order. Templates without a group
// are reported under the empty name.
func (c *Catalog) Groups() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, tmpl := range c.templates {
		if _, ok := seen[tmpl.Group]; ok {
			continue
		}
		seen[tmpl.Group] = struct{}{}
		out = append(out, tmpl.Group)
	}
	return out
}

// InGroup returns copies of the templates belonging to group.
func (c *Catalog) InGroup(group string) []model.ElementTemplate {
	if c == nil {
		return nil
	}
	var out []model.ElementTemplate
	for _, tmpl := range c.templates {
		if tmpl.Group == group {
			out = append(out, tmpl.Clone())
		}
	}
	return out
}

// Len reports the number of templates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}
