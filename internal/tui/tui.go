package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

// Option configures the interactive builder.
type Option func(*builder)

// WithLogger sets the builder logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPreview shows the preview pane on start.
func WithPreview(show bool) Option {
	return func(b *builder) {
		b.showPreview = show
	}
}

// Run starts the builder on the alternate screen and blocks until it exits.
func Run(ws *workspace.Workspace, options ...Option) error {
	m := newBuilder(ws, options...)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
