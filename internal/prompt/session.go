package prompt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

const (
	actionAdd = iota
	actionMove
	actionPreview
	actionDone
)

var actions = []string{
	actionAdd:     "Add element",
	actionMove:    "Move element",
	actionPreview: "Show preview",
	actionDone:    "Done",
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPreviewWidth sets the wrap width of the terminal preview.
func WithPreviewWidth(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.width = width
		}
	}
}

// Session drives a workspace from prompt answers.
type Session struct {
	ws     *workspace.Workspace
	driver Driver
	logger *zap.Logger
	width  int
}

// NewSession binds driver to ws.
func NewSession(ws *workspace.Workspace, driver Driver, options ...Option) *Session {
	s := &Session{
		ws:     ws,
		driver: driver,
		logger: zap.NewNop(),
		width:  80,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Run loops until the user confirms Done or aborts. Gesture failures are
// reported to the user and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	if err := s.showCanvas(ctx); err != nil {
		return err
	}
	for {
		choice, err := s.selectIndex(ctx, SelectConfig{
			Message: "What next?",
			Options: actions,
		})
		if err != nil {
			return err
		}

		switch choice {
		case actionAdd:
			err = s.add(ctx)
		case actionMove:
			err = s.move(ctx)
		case actionPreview:
			err = s.preview(ctx)
		case actionDone:
			finished, cerr := s.driver.Confirm(ctx, ConfirmConfig{Message: "Finish building?", Default: true})
			if cerr != nil {
				return cerr
			}
			if finished {
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) add(ctx context.Context) error {
	templates := s.ws.Catalog().Templates()
	if len(templates) == 0 {
		return s.driver.Info(ctx, "The catalog is empty.")
	}
	labels := make([]string, len(templates))
	for i, tmpl := range templates {
		labels[i] = tmpl.Label
	}
	picked, err := s.selectIndex(ctx, SelectConfig{Message: "Element", Options: labels})
	if err != nil {
		return err
	}

	snap := s.ws.Snapshot()
	positions := make([]string, 0, snap.Len()+1)
	for i, el := range snap.Elements() {
		positions = append(positions, fmt.Sprintf("Before %d. %s", i+1, el.Label))
	}
	positions = append(positions, "At the end")
	at, err := s.selectIndex(ctx, SelectConfig{
		Message:      "Position",
		Options:      positions,
		DefaultIndex: len(positions) - 1,
	})
	if err != nil {
		return err
	}

	el, err := s.ws.AddElement(templates[picked].Type, at)
	if err != nil {
		s.logger.Warn("prompt: add failed", zap.String("type", templates[picked].Type), zap.Int("index", at), zap.Error(err))
		return s.driver.Info(ctx, fmt.Sprintf("Could not add element: %v", err))
	}
	position := s.ws.Snapshot().IndexOf(el.ID) + 1
	if err := s.driver.Info(ctx, fmt.Sprintf("Added %s at position %d.", el.Label, position)); err != nil {
		return err
	}
	return s.showCanvas(ctx)
}

func (s *Session) move(ctx context.Context) error {
	snap := s.ws.Snapshot()
	if snap.Len() < 2 {
		return s.driver.Info(ctx, "Nothing to move.")
	}
	labels := elementLabels(snap)
	from, err := s.selectIndex(ctx, SelectConfig{Message: "Element to move", Options: labels})
	if err != nil {
		return err
	}
	to, err := s.selectIndex(ctx, SelectConfig{
		Message:      "New position",
		Options:      labels,
		DefaultIndex: from,
	})
	if err != nil {
		return err
	}

	if err := s.ws.MoveElement(from, to); err != nil {
		s.logger.Warn("prompt: move failed", zap.Int("from", from), zap.Int("to", to), zap.Error(err))
		return s.driver.Info(ctx, fmt.Sprintf("Could not move element: %v", err))
	}
	if err := s.driver.Info(ctx, fmt.Sprintf("Moved %s to position %d.", snap.Elements()[from].Label, to+1)); err != nil {
		return err
	}
	return s.showCanvas(ctx)
}

func (s *Session) preview(ctx context.Context) error {
	out, err := s.ws.PreviewTerminal(s.width)
	if err != nil {
		s.logger.Warn("prompt: terminal preview failed, using markdown", zap.Error(err))
		out = s.ws.PreviewMarkdown()
	}
	return s.driver.Info(ctx, out)
}

func (s *Session) showCanvas(ctx context.Context) error {
	return s.driver.Info(ctx, s.ws.Frame().Canvas)
}

func (s *Session) selectIndex(ctx context.Context, cfg SelectConfig) (int, error) {
	idx, err := s.driver.Select(ctx, cfg)
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(cfg.Options) {
		return -1, fmt.Errorf("%w: %q", ErrNoSelection, cfg.Message)
	}
	return idx, nil
}

func elementLabels(snap model.Snapshot) []string {
	labels := make([]string, snap.Len())
	for i, el := range snap.Elements() {
		labels[i] = fmt.Sprintf("%d. %s", i+1, el.Label)
	}
	return labels
}
