package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/dnd"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

type focus int

const (
	focusPalette focus = iota
	focusCanvas
)

var (
	accent      = lipgloss.Color("62")
	muted       = lipgloss.Color("241")
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(muted)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activePane  = paneStyle.BorderForeground(accent)
)

// builder is the bubbletea model. All gestures go through the workspace
// canvas, so indices always refer to what is on screen.
type builder struct {
	ws        *workspace.Workspace
	templates []model.ElementTemplate
	keys      keyMap
	help      help.Model
	logger    *zap.Logger

	focus         focus
	paletteCursor int
	cursor        int
	showPreview   bool
	width         int
	height        int
	status        string

	previewVersion uint64
	previewWidth   int
	previewCache   string
}

func newBuilder(ws *workspace.Workspace, options ...Option) *builder {
	b := &builder{
		ws:     ws,
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: zap.NewNop(),
		width:  100,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	cat := ws.Catalog()
	for _, group := range cat.Groups() {
		b.templates = append(b.templates, cat.InGroup(group)...)
	}
	b.sync()
	return b
}

func (b *builder) Init() tea.Cmd { return nil }

func (b *builder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.help.Width = msg.Width
		return b, nil
	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *builder) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		if b.dragging() {
			_ = b.ws.Canvas().Abandon()
		}
		return b, tea.Quit
	case key.Matches(msg, b.keys.Help):
		b.help.ShowAll = !b.help.ShowAll
	case key.Matches(msg, b.keys.Preview):
		b.showPreview = !b.showPreview
	case key.Matches(msg, b.keys.Focus):
		if b.focus == focusPalette {
			b.focus = focusCanvas
		} else {
			b.focus = focusPalette
		}
	case key.Matches(msg, b.keys.Cancel):
		b.cancel()
	case key.Matches(msg, b.keys.Drop):
		b.drop()
	case key.Matches(msg, b.keys.Grab):
		b.grab()
	case key.Matches(msg, b.keys.Up):
		b.navigate(-b.rowStep())
	case key.Matches(msg, b.keys.Down):
		b.navigate(b.rowStep())
	case key.Matches(msg, b.keys.Left):
		if b.focus == focusCanvas {
			b.navigate(-1)
		}
	case key.Matches(msg, b.keys.Right):
		if b.focus == focusCanvas {
			b.navigate(1)
		}
	}
	b.sync()
	return b, nil
}

func (b *builder) dragging() bool {
	return b.ws.Coordinator().State() == dnd.StateDragging
}

func (b *builder) rowStep() int {
	if b.focus == focusPalette {
		return 1
	}
	return b.ws.Canvas().Columns()
}

// maxCursor is the last canvas slot the cursor may rest on. Palette drags may
// also target the empty space past the last card.
func (b *builder) maxCursor() int {
	n := b.ws.Snapshot().Len()
	if g, ok := b.ws.Coordinator().Gesture(); ok && g.Kind == dnd.SourceTemplate {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func (b *builder) navigate(delta int) {
	if b.focus == focusPalette {
		if b.dragging() {
			return
		}
		b.paletteCursor = clamp(b.paletteCursor+delta, 0, len(b.templates)-1)
		return
	}

	next := clamp(b.cursor+delta, 0, b.maxCursor())
	if next == b.cursor {
		return
	}
	b.cursor = next
	if b.dragging() {
		b.hover()
	}
}

func (b *builder) hover() {
	canvas := b.ws.Canvas()
	var err error
	if b.cursor >= canvas.Rendered().Len() {
		err = canvas.HoverEmpty()
	} else {
		err = canvas.HoverSlot(b.cursor)
	}
	if err != nil {
		b.logger.Warn("tui: hover failed", zap.Int("cursor", b.cursor), zap.Error(err))
		b.status = fmt.Sprintf("Drag aborted: %v", err)
		b.cursor = clamp(b.cursor, 0, b.maxCursor())
	}
}

func (b *builder) grab() {
	canvas := b.ws.Canvas()
	if b.focus == focusPalette {
		if len(b.templates) == 0 {
			return
		}
		tmpl := b.templates[b.paletteCursor]
		if err := canvas.DragTemplate(tmpl); err != nil {
			b.status = fmt.Sprintf("Cannot drag %s: %v", tmpl.Label, err)
			return
		}
		b.focus = focusCanvas
		b.cursor = b.ws.Snapshot().Len()
		b.hover()
		b.status = fmt.Sprintf("Dragging %s. Move to a slot and press enter.", tmpl.Label)
		return
	}

	if b.ws.Snapshot().Empty() {
		return
	}
	if err := canvas.Grab(b.cursor); err != nil {
		b.status = fmt.Sprintf("Cannot grab: %v", err)
		return
	}
	el, _ := canvas.Rendered().At(b.cursor)
	b.status = fmt.Sprintf("Moving %s.", el.Label)
}

func (b *builder) drop() {
	el, inserted, err := b.ws.Canvas().Release()
	if err != nil {
		b.status = fmt.Sprintf("Drop failed: %v", err)
		return
	}
	snap := b.ws.Snapshot()
	if inserted {
		b.cursor = snap.IndexOf(el.ID)
		b.status = fmt.Sprintf("Added %s at position %d.", el.Label, b.cursor+1)
		return
	}
	if moved, ok := snap.At(b.cursor); ok {
		b.status = fmt.Sprintf("Moved %s to position %d.", moved.Label, b.cursor+1)
	}
}

func (b *builder) cancel() {
	if err := b.ws.Canvas().Abandon(); err != nil {
		return
	}
	b.cursor = clamp(b.cursor, 0, b.maxCursor())
	b.status = "Drag cancelled."
}

// sync aligns key bindings and the canvas cursor with the gesture state.
func (b *builder) sync() {
	dragging := b.dragging()
	b.keys.dragging(dragging)
	if b.focus == focusCanvas && !dragging {
		b.ws.Canvas().Focus(b.cursor)
	} else {
		b.ws.Canvas().Focus(-1)
	}
}

func (b *builder) View() string {
	frame := b.ws.Frame()

	palette := b.paletteView()
	paletteBox := paneStyle
	canvasBox := paneStyle
	if b.focus == focusPalette {
		paletteBox = activePane
	} else {
		canvasBox = activePane
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paletteBox.Render(palette),
		" ",
		canvasBox.Render(titleStyle.Render("Canvas")+"\n"+frame.Canvas),
	)

	sections := []string{
		titleStyle.Render("Form Builder") + statusStyle.Render(fmt.Sprintf("  v%d", frame.Version)),
		body,
	}
	if b.showPreview {
		sections = append(sections, paneStyle.Render(titleStyle.Render("Preview")+"\n"+b.previewView(frame.Version)))
	}
	if b.status != "" {
		sections = append(sections, statusStyle.Render(b.status))
	}
	sections = append(sections, b.help.View(b.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b *builder) paletteView() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Elements"))
	group := "\x00"
	for i, tmpl := range b.templates {
		if tmpl.Group != group {
			group = tmpl.Group
			if group != "" {
				lines = append(lines, groupStyle.Render(group))
			}
		}
		if i == b.paletteCursor && b.focus == focusPalette {
			lines = append(lines, cursorStyle.Render("› "+tmpl.Label))
			continue
		}
		lines = append(lines, itemStyle.Render("  "+tmpl.Label))
	}
	return strings.Join(lines, "\n")
}

// previewView renders the terminal preview, reusing the last render while the
// sequence version and width are unchanged.
func (b *builder) previewView(version uint64) string {
	width := b.width - paneStyle.GetHorizontalFrameSize()
	if width < 20 {
		width = 20
	}
	if b.previewCache != "" && b.previewVersion == version && b.previewWidth == width {
		return b.previewCache
	}
	out, err := b.ws.PreviewTerminal(width)
	if err != nil {
		b.logger.Warn("tui: terminal preview failed", zap.Error(err))
		out = b.ws.PreviewMarkdown()
	}
	b.previewVersion, b.previewWidth, b.previewCache = version, width, strings.TrimRight(out, "\n")
	return b.previewCache
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
