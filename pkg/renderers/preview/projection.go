package preview

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Control kinds a placed element can project to.
const (
	KindInput    = "input"
	KindTextArea = "textarea"
	KindSelect   = "select"
	KindCheckbox = "checkbox"
	KindToggle   = "toggle"
	KindRadio    = "radio"
)

// Field is the read-only projection of one placed element. Text values are
// plain text: markup is stripped and entities decoded, leaving escaping to the
// output format.
type Field struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Kind        string   `json:"kind"`
	InputType   string   `json:"inputType,omitempty"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
}

// Form is the projection of a whole snapshot.
type Form struct {
	Version uint64  `json:"version"`
	Title   string  `json:"title,omitempty"`
	Fields  []Field `json:"fields"`
	// Skipped counts elements whose type has no preview control.
	Skipped int `json:"skipped,omitempty"`
}

// IDs lists projected field ids in order.
func (f Form) IDs() []string {
	ids := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		ids[i] = field.ID
	}
	return ids
}

func project(snap model.Snapshot, title string, policy *bluemonday.Policy) Form {
	form := Form{
		Version: snap.Version(),
		Title:   plainText(policy, title),
		Fields:  make([]Field, 0, snap.Len()),
	}
	for _, el := range snap.Elements() {
		kind, inputType, ok := controlFor(el.Type)
		if !ok {
			form.Skipped++
			continue
		}
		field := Field{
			ID:          el.ID,
			Type:        el.Type,
			Kind:        kind,
			InputType:   inputType,
			Label:       plainText(policy, el.Label),
			Placeholder: plainText(policy, el.Placeholder),
			Required:    el.Required,
		}
		for _, option := range el.Options {
			if cleaned := plainText(policy, option); cleaned != "" {
				field.Options = append(field.Options, cleaned)
			}
		}
		form.Fields = append(form.Fields, field)
	}
	return form
}

func controlFor(typ string) (kind, inputType string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case model.TypeText:
		return KindInput, "text", true
	case model.TypeEmail:
		return KindInput, "email", true
	case "number", "tel", "url", "password", "date":
		return KindInput, strings.ToLower(strings.TrimSpace(typ)), true
	case model.TypeTextArea:
		return KindTextArea, "", true
	case model.TypeSelect:
		return KindSelect, "", true
	case model.TypeCheckbox:
		return KindCheckbox, "", true
	case model.TypeToggle:
		return KindToggle, "", true
	case model.TypeRadio:
		return KindRadio, "", true
	default:
		return "", "", false
	}
}

func plainText(policy *bluemonday.Policy, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(trimmed)))
}
