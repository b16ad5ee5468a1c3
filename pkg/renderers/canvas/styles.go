package canvas

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used to draw the grid.
type Styles struct {
	Cell        lipgloss.Style
	Dragged     lipgloss.Style
	Hovered     lipgloss.Style
	Focused     lipgloss.Style
	DropZone    lipgloss.Style
	Empty       lipgloss.Style
	Label       lipgloss.Style
	Required    lipgloss.Style
	Placeholder lipgloss.Style
	Type        lipgloss.Style
	Index       lipgloss.Style
}

// DefaultStyles returns the stock card styles.
func DefaultStyles() Styles {
	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")

	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Styles{
		Cell:        cell,
		Dragged:     cell.BorderForeground(dim).Faint(true),
		Hovered:     cell.BorderForeground(accent),
		Focused:     cell.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("212")),
		DropZone:    cell.Border(lipgloss.NormalBorder()).BorderForeground(accent).Foreground(accent),
		Empty:       cell.Border(lipgloss.NormalBorder()).BorderForeground(muted).Foreground(muted).Align(lipgloss.Center),
		Label:       lipgloss.NewStyle().Bold(true),
		Required:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Placeholder: lipgloss.NewStyle().Foreground(muted),
		Type:        lipgloss.NewStyle().Foreground(muted),
		Index:       lipgloss.NewStyle().Foreground(dim),
	}
}
