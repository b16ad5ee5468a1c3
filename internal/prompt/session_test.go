package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

type stubDriver struct {
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	prompts      []string
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, ErrAborted
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newSession(t *testing.T, driver Driver) (*Session, *workspace.Workspace) {
	t.Helper()
	ws, err := workspace.New()
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}
	t.Cleanup(ws.Close)
	return NewSession(ws, driver, WithPreviewWidth(60)), ws
}

func TestSession_AddMovePreviewDone(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{
			actionAdd, 3, 0, // checkbox before Name
			actionMove, 0, 3, // checkbox to the end
			actionPreview,
			actionDone,
		},
		confirm: []bool{true},
	}
	session, ws := newSession(t, driver)

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, ws.Snapshot().IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	el, _ := ws.Snapshot().At(3)
	if el.Label != "Checkbox" {
		t.Fatalf("expected checkbox last, got %q", el.Label)
	}

	joined := strings.Join(driver.infoMessages, "\n")
	for _, fragment := range []string{"Added Checkbox at position 1.", "Moved Checkbox to position 4.", "Country"} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("expected info to contain %q\n%s", fragment, joined)
		}
	}
	wantPrompts := []string{
		"What next?", "Element", "Position",
		"What next?", "Element to move", "New position",
		"What next?",
		"What next?",
	}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_DoneDeclinedKeepsLooping(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{actionDone, actionDone},
		confirm:   []bool{false, true},
	}
	session, ws := newSession(t, driver)

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if ws.Snapshot().Version() != 0 {
		t.Fatalf("expected untouched workspace, got version %d", ws.Snapshot().Version())
	}
}

func TestSession_AbortPropagates(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{actionAdd, 0}}
	session, ws := newSession(t, driver)

	err := session.Run(testsupport.Context())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if ws.Snapshot().Version() != 0 {
		t.Fatalf("aborted add must not mutate, got version %d", ws.Snapshot().Version())
	}
}

func TestSession_InvalidSelection(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{42}}
	session, _ := newSession(t, driver)

	if err := session.Run(testsupport.Context()); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestSession_MoveNeedsTwoElements(t *testing.T) {
	ws, err := workspace.New(workspace.WithEmptyCanvas())
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}
	t.Cleanup(ws.Close)
	driver := &stubDriver{selectIdx: []int{actionMove, actionDone}, confirm: []bool{true}}

	if err := NewSession(ws, driver).Run(testsupport.Context()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(strings.Join(driver.infoMessages, "\n"), "Nothing to move.") {
		t.Fatalf("expected nothing-to-move notice, got %v", driver.infoMessages)
	}
}

func TestIndexOf(t *testing.T) {
	if got := indexOf(actions, "Show preview"); got != actionPreview {
		t.Fatalf("expected %d, got %d", actionPreview, got)
	}
	if got := indexOf(actions, "missing"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
