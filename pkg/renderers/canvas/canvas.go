package canvas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formbuilder/pkg/dnd"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	// EmptyMessage is shown when the canvas holds no elements.
	EmptyMessage = "Drag and drop form elements here"
	// DropMessage marks the empty space past the last card while a template
	// hovers over it.
	DropMessage = "Drop here"

	defaultColumns   = 2
	defaultCellWidth = 30
	minCellWidth     = 12
)

// Option configures the canvas view.
type Option func(*View)

// WithColumns sets the number of cards per row.
func WithColumns(columns int) Option {
	return func(v *View) {
		if columns > 0 {
			v.columns = columns
		}
	}
}

// WithCellWidth sets the outer width of a card.
func WithCellWidth(width int) Option {
	return func(v *View) {
		if width >= minCellWidth {
			v.cellWidth = width
		}
	}
}

// WithStyles replaces the default card styles.
func WithStyles(styles Styles) Option {
	return func(v *View) {
		v.styles = styles
	}
}

// View renders snapshots and forwards gestures to a coordinator.
type View struct {
	coord     *dnd.Coordinator
	columns   int
	cellWidth int
	styles    Styles
	rendered  model.Snapshot
	focused   int
}

// New builds a canvas view driving coord.
func New(coord *dnd.Coordinator, options ...Option) *View {
	v := &View{
		coord:     coord,
		columns:   defaultColumns,
		cellWidth: defaultCellWidth,
		styles:    DefaultStyles(),
		focused:   -1,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Columns reports the number of cards per row.
func (v *View) Columns() int {
	return v.columns
}

// Focus marks the card at index as the keyboard cursor. A negative index
// clears it.
func (v *View) Focus(index int) {
	v.focused = index
}

// Rendered returns the snapshot drawn by the last Render call.
func (v *View) Rendered() model.Snapshot {
	return v.rendered
}

// Render draws snap and records it as the gesture reference.
func (v *View) Render(snap model.Snapshot) string {
	v.rendered = snap

	g, dragging := v.coord.Gesture()
	innerWidth := v.cellWidth - v.styles.Cell.GetHorizontalBorderSize()

	if snap.Empty() {
		style := v.styles.Empty
		if dragging && g.Kind == dnd.SourceTemplate && g.Hovered {
			style = v.styles.DropZone.Align(lipgloss.Center)
		}
		width := v.cellWidth*v.columns - style.GetHorizontalBorderSize()
		return style.Width(width).Padding(1, 1).Render(EmptyMessage)
	}

	cards := make([]string, 0, snap.Len()+1)
	for i, el := range snap.Elements() {
		style := v.styles.Cell
		switch {
		case dragging && g.Kind == dnd.SourceExisting && el.ID == g.ElementID:
			style = v.styles.Dragged
		case dragging && g.Hovered && !g.Target.End && g.Target.Index == i:
			style = v.styles.Hovered
		case !dragging && v.focused == i:
			style = v.styles.Focused
		}
		cards = append(cards, style.Width(innerWidth).Render(v.cardBody(i, el)))
	}
	if dragging && g.Kind == dnd.SourceTemplate && g.Hovered && g.Target.End {
		cards = append(cards, v.styles.DropZone.Width(innerWidth).Render(DropMessage))
	}

	rows := make([]string, 0, len(cards)/v.columns+1)
	for start := 0; start < len(cards); start += v.columns {
		end := start + v.columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *View) cardBody(index int, el model.PlacedElement) string {
	title := v.styles.Index.Render(fmt.Sprintf("%d.", index+1)) + " " + v.styles.Label.Render(el.Label)
	if el.Required {
		title += " " + v.styles.Required.Render("Required")
	}
	lines := []string{
		title,
		v.styles.Placeholder.Render(placeholderText(el)),
		v.styles.Type.Render("Type: " + el.Type),
	}
	return strings.Join(lines, "\n")
}

func placeholderText(el model.PlacedElement) string {
	if el.Placeholder != "" {
		return el.Placeholder
	}
	return "Enter " + strings.ToLower(el.Label)
}

// Grab starts a reorder gesture for the card drawn at index.
func (v *View) Grab(index int) error {
	el, ok := v.rendered.At(index)
	if !ok {
		return &layout.IndexError{Op: "grab", Index: index, Len: v.rendered.Len()}
	}
	current := v.coord.Snapshot().IndexOf(el.ID)
	if current < 0 {
		return &layout.IndexError{Op: "grab", Index: index, Len: v.coord.Snapshot().Len()}
	}
	return v.coord.StartGesture(dnd.FromCanvas(current))
}

// DragTemplate starts an insertion gesture for a palette template.
func (v *View) DragTemplate(tmpl model.ElementTemplate) error {
	return v.coord.StartGesture(dnd.FromTemplate(tmpl))
}

// HoverSlot reports the pointer over the card drawn at index. An index outside
// the rendered grid cancels the gesture.
func (v *View) HoverSlot(index int) error {
	if !v.rendered.Contains(index) {
		err := &layout.IndexError{Op: "hover", Index: index, Len: v.rendered.Len()}
		if v.coord.State() == dnd.StateDragging {
			if cerr := v.coord.Cancel(); cerr != nil {
				return fmt.Errorf("%w (cancel: %v)", err, cerr)
			}
		}
		return err
	}
	return v.coord.Hover(dnd.AtIndex(index))
}

// HoverEmpty reports the pointer over canvas space past the last card.
func (v *View) HoverEmpty() error {
	return v.coord.Hover(dnd.AtEnd())
}

// Release drops the gesture in flight.
func (v *View) Release() (model.PlacedElement, bool, error) {
	return v.coord.Drop()
}

// Abandon cancels the gesture in flight.
func (v *View) Abandon() error {
	return v.coord.Cancel()
}
