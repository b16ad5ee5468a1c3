package preview

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/model"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/pongo"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	// StylesheetAsset is the theme asset key resolved into a <link> tag.
	StylesheetAsset = "formbuilder.stylesheet"

	defaultSubmitLabel   = "Submit Form"
	defaultSelectPrompt  = "Select an option"
	defaultTerminalStyle = "notty"
	previewTemplate      = "templates/preview.tmpl"
)

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Option configures the preview view.
type Option func(*config)

type config struct {
	templateFS    fs.FS
	templates     rendertemplate.TemplateRenderer
	theme         *theme.RendererConfig
	policy        *bluemonday.Policy
	title         string
	submitLabel   string
	selectPrompt  string
	terminalStyle string
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// templates/preview.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads the template bundle from disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template renderer.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithTheme applies a resolved go-theme configuration to HTML output.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithSanitizer replaces the strict policy used to strip markup from labels,
// placeholders and options.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithTitle sets the heading rendered above the fields.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// WithSubmitLabel overrides the submit button caption.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(label) != "" {
			cfg.submitLabel = label
		}
	}
}

// WithTerminalStyle selects the glamour style used by Terminal ("notty",
// "dark", "light", "ascii", ...).
func WithTerminalStyle(style string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(style) != "" {
			cfg.terminalStyle = style
		}
	}
}

// View renders snapshots read-only. It holds no sequence state of its own:
// every output is derived from the snapshot passed in.
type View struct {
	templates     rendertemplate.TemplateRenderer
	theme         *theme.RendererConfig
	policy        *bluemonday.Policy
	title         string
	submitLabel   string
	selectPrompt  string
	terminalStyle string
}

// New builds a preview view.
func New(options ...Option) (*View, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		submitLabel:   defaultSubmitLabel,
		selectPrompt:  defaultSelectPrompt,
		terminalStyle: defaultTerminalStyle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.StrictPolicy()
	}

	renderer := cfg.templates
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("preview: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &View{
		templates:     renderer,
		theme:         cfg.theme,
		policy:        cfg.policy,
		title:         cfg.title,
		submitLabel:   cfg.submitLabel,
		selectPrompt:  cfg.selectPrompt,
		terminalStyle: cfg.terminalStyle,
	}, nil
}

// Project derives the read-only form projection from snap.
func (v *View) Project(snap model.Snapshot) Form {
	return project(snap, v.title, v.policy)
}

// HTML renders snap as an HTML form fragment.
func (v *View) HTML(snap model.Snapshot) ([]byte, error) {
	if v.templates == nil {
		return nil, fmt.Errorf("preview: template renderer is nil")
	}
	form := v.Project(snap)

	result, err := v.templates.RenderTemplate(previewTemplate, map[string]any{
		"form": map[string]any{
			"version":      strconv.FormatUint(form.Version, 10),
			"title":        form.Title,
			"fields":       form.Fields,
			"submitLabel":  v.submitLabel,
			"selectPrompt": v.selectPrompt,
		},
		"theme": v.themeContext(),
	})
	if err != nil {
		return nil, fmt.Errorf("preview: render template: %w", err)
	}
	return []byte(result), nil
}

// Markdown renders snap as a Markdown outline of the form.
func (v *View) Markdown(snap model.Snapshot) string {
	form := v.Project(snap)

	var b strings.Builder
	if form.Title != "" {
		b.WriteString("# ")
		b.WriteString(escapeMarkdown(form.Title))
		b.WriteString("\n\n")
	}
	if len(form.Fields) == 0 {
		b.WriteString("_No fields yet._\n")
		return b.String()
	}
	for i, field := range form.Fields {
		fmt.Fprintf(&b, "%d. **%s**", i+1, escapeMarkdown(field.Label))
		if field.Required {
			b.WriteString(" \\*")
		}
		b.WriteString(" | ")
		b.WriteString(describeControl(field))
		if field.Placeholder != "" {
			fmt.Fprintf(&b, " | _%s_", escapeMarkdown(field.Placeholder))
		}
		b.WriteString("\n")
		for _, option := range field.Options {
			fmt.Fprintf(&b, "   - %s\n", escapeMarkdown(option))
		}
	}
	fmt.Fprintf(&b, "\n[ %s ]\n", escapeMarkdown(v.submitLabel))
	return b.String()
}

// Terminal renders the Markdown projection for a terminal of the given width.
func (v *View) Terminal(snap model.Snapshot, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(v.terminalStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("preview: terminal renderer: %w", err)
	}
	out, err := renderer.Render(v.Markdown(snap))
	if err != nil {
		return "", fmt.Errorf("preview: terminal render: %w", err)
	}
	return out, nil
}

func describeControl(field Field) string {
	switch field.Kind {
	case KindInput:
		return field.InputType + " input"
	case KindTextArea:
		return "text area"
	case KindSelect:
		return "select"
	case KindCheckbox:
		return "checkbox"
	case KindToggle:
		return "toggle"
	case KindRadio:
		return "radio group"
	default:
		return field.Kind
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"|", `\|`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

type themeContext struct {
	Name       string `json:"name,omitempty"`
	Variant    string `json:"variant,omitempty"`
	CSS        string `json:"css,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
}

func (v *View) themeContext() themeContext {
	cfg := v.theme
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
	}

	vars := cfg.CSSVars
	if len(vars) == 0 && len(cfg.Tokens) > 0 {
		vars = make(map[string]string, len(cfg.Tokens))
		for key, value := range cfg.Tokens {
			vars["--"+key] = value
		}
	}
	ctx.CSS = cssVarsStyle(vars)

	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(StylesheetAsset)
	}
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if !safeCSSToken(key) || !safeCSSToken(vars[key]) {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

// safeCSSToken rejects values that could close the declaration or the style
// element.
func safeCSSToken(s string) bool {
	return strings.TrimSpace(s) != "" && !strings.ContainsAny(s, "<>;{}\"'\\")
}
