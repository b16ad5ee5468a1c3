package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

type editKind int

const (
	editAdd editKind = iota
	editMove
)

type edit struct {
	kind  editKind
	raw   string
	typ   string
	index int
	from  int
	to    int
}

// editFlag appends to a shared list so --add and --move apply in command-line
// order.
type editFlag struct {
	kind  editKind
	edits *[]edit
}

func (f *editFlag) String() string { return "" }

func (f *editFlag) Type() string {
	if f.kind == editAdd {
		return "type[@index]"
	}
	return "from:to"
}

func (f *editFlag) Set(value string) error {
	var (
		e   edit
		err error
	)
	if f.kind == editAdd {
		e, err = parseAdd(value)
	} else {
		e, err = parseMove(value)
	}
	if err != nil {
		return err
	}
	*f.edits = append(*f.edits, e)
	return nil
}

func parseAdd(value string) (edit, error) {
	typ, at, hasIndex := strings.Cut(strings.TrimSpace(value), "@")
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return edit{}, fmt.Errorf("add %q: missing element type", value)
	}
	e := edit{kind: editAdd, raw: value, typ: typ, index: -1}
	if hasIndex {
		index, err := strconv.Atoi(strings.TrimSpace(at))
		if err != nil || index < 0 {
			return edit{}, fmt.Errorf("add %q: index must be a non-negative integer", value)
		}
		e.index = index
	}
	return e, nil
}

func parseMove(value string) (edit, error) {
	rawFrom, rawTo, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return edit{}, fmt.Errorf("move %q: expected from:to", value)
	}
	from, err := strconv.Atoi(strings.TrimSpace(rawFrom))
	if err != nil {
		return edit{}, fmt.Errorf("move %q: bad from index: %w", value, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(rawTo))
	if err != nil {
		return edit{}, fmt.Errorf("move %q: bad to index: %w", value, err)
	}
	return edit{kind: editMove, raw: value, from: from, to: to}, nil
}

func applyEdits(ws *workspace.Workspace, edits []edit) error {
	for _, e := range edits {
		switch e.kind {
		case editAdd:
			if _, err := ws.AddElement(e.typ, e.index); err != nil {
				return fmt.Errorf("add %s: %w", e.raw, err)
			}
		case editMove:
			if err := ws.MoveElement(e.from, e.to); err != nil {
				return fmt.Errorf("move %s: %w", e.raw, err)
			}
		}
	}
	return nil
}

type previewFlags struct {
	format       string
	output       string
	title        string
	submitLabel  string
	width        int
	style        string
	templatesDir string
	themeName    string
	themeVariant string
	stylesheet   string
}

func newPreviewCmd(a *app) *cobra.Command {
	var (
		edits []edit
		flags previewFlags
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Apply edits to the canvas and render the form preview",
		Example: strings.TrimSpace(`
  formbuilder preview --add select@1 --move 0:2 --format html --output form.html
  formbuilder preview --empty --add text --add email --format terminal
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace(workspace.WithPreviewOptions(flags.previewOptions()...))
			if err != nil {
				return err
			}
			defer ws.Close()

			if err := applyEdits(ws, edits); err != nil {
				return err
			}
			payload, err := renderPreview(cmd.Context(), ws, flags)
			if err != nil {
				return err
			}

			if flags.output == "" {
				_, err := cmd.OutOrStdout().Write(payload)
				return err
			}
			if err := os.WriteFile(flags.output, payload, 0o644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Preview written to %s\n", flags.output)
			return nil
		},
	}

	cmd.Flags().Var(&editFlag{kind: editAdd, edits: &edits}, "add", "Drop a catalog element at a slot (repeatable, e.g. select@1; no index appends)")
	cmd.Flags().Var(&editFlag{kind: editMove, edits: &edits}, "move", "Drag the element at one slot to another (repeatable, e.g. 0:2)")
	cmd.Flags().StringVar(&flags.format, "format", "html", "Output format (html|markdown|terminal|json)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the preview to a file instead of stdout")
	cmd.Flags().StringVar(&flags.title, "title", "", "Form title")
	cmd.Flags().StringVar(&flags.submitLabel, "submit-label", "", "Submit button caption")
	cmd.Flags().IntVar(&flags.width, "width", 80, "Wrap width for terminal output")
	cmd.Flags().StringVar(&flags.style, "style", "", "Glamour style for terminal output (notty|dark|light|ascii)")
	cmd.Flags().StringVar(&flags.templatesDir, "templates", "", "Directory overriding the embedded preview templates")
	cmd.Flags().StringVar(&flags.themeName, "theme", "", "Theme name exposed to the HTML preview")
	cmd.Flags().StringVar(&flags.themeVariant, "theme-variant", "", "Theme variant exposed to the HTML preview")
	cmd.Flags().StringVar(&flags.stylesheet, "stylesheet", "", "Stylesheet URL linked from the HTML preview")
	return cmd
}

func (f previewFlags) previewOptions() []preview.Option {
	options := []preview.Option{
		preview.WithTitle(f.title),
		preview.WithSubmitLabel(f.submitLabel),
		preview.WithTerminalStyle(f.style),
	}
	if f.templatesDir != "" {
		options = append(options, preview.WithTemplatesDir(f.templatesDir))
	}
	if cfg := f.themeConfig(); cfg != nil {
		options = append(options, preview.WithTheme(cfg))
	}
	return options
}

func (f previewFlags) themeConfig() *theme.RendererConfig {
	if f.themeName == "" && f.themeVariant == "" && f.stylesheet == "" {
		return nil
	}
	stylesheet := f.stylesheet
	return &theme.RendererConfig{
		Theme:   f.themeName,
		Variant: f.themeVariant,
		AssetURL: func(key string) string {
			if key == preview.StylesheetAsset {
				return stylesheet
			}
			return ""
		},
	}
}

func renderPreview(ctx context.Context, ws *workspace.Workspace, flags previewFlags) ([]byte, error) {
	format := flags.format
	if strings.TrimSpace(format) == "" {
		format = preview.FormatHTML
	}
	out, err := ws.Render(ctx, format, render.RenderOptions{Width: flags.width})
	if err != nil {
		if errors.Is(err, render.ErrUnknownRenderer) {
			return nil, fmt.Errorf("unsupported preview format %q (available: %s)", flags.format, strings.Join(ws.Renderers().List(), ", "))
		}
		return nil, err
	}
	return out, nil
}
