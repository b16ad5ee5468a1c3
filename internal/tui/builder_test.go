package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/dnd"
	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

func newTestBuilder(t *testing.T, options ...workspace.Option) *builder {
	t.Helper()
	ws, err := workspace.New(options...)
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}
	t.Cleanup(ws.Close)
	return newBuilder(ws)
}

func press(t *testing.T, b *builder, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = b.Update(k)
		if next != b {
			t.Fatalf("update returned a different model")
		}
	}
	return cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBuilder_PaletteDragAppends(t *testing.T) {
	b := newTestBuilder(t)

	press(t, b, keyDown, keyDown, keyDown)
	if got := b.templates[b.paletteCursor].Label; got != "Checkbox" {
		t.Fatalf("expected Checkbox under cursor, got %q", got)
	}

	press(t, b, keyEnter)
	if !b.dragging() || b.focus != focusCanvas {
		t.Fatalf("expected template drag on canvas")
	}
	if b.ws.Snapshot().Version() != 0 {
		t.Fatalf("template drag must not mutate before drop")
	}

	press(t, b, keyEnter)
	if b.dragging() {
		t.Fatalf("expected drop to end the gesture")
	}
	snap := b.ws.Snapshot()
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, snap.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if el, _ := snap.At(3); el.Type != "checkbox" {
		t.Fatalf("expected checkbox appended, got %q", el.Type)
	}
	if !strings.Contains(b.status, "Added Checkbox at position 4.") {
		t.Fatalf("unexpected status %q", b.status)
	}
}

func TestBuilder_PaletteDragInsertsAtCursor(t *testing.T) {
	b := newTestBuilder(t)

	press(t, b, keyEnter, keyLeft, keyLeft, keyLeft, keyEnter)

	if diff := cmp.Diff([]string{"4", "1", "2", "3"}, b.ws.Snapshot().IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_CanvasReorderMovesLive(t *testing.T) {
	b := newTestBuilder(t)

	press(t, b, keyTab, keyEnter)
	g, ok := b.ws.Coordinator().Gesture()
	if !ok || g.Kind != dnd.SourceExisting || g.ElementID != "1" {
		t.Fatalf("expected reorder gesture for element 1, got %+v", g)
	}

	press(t, b, keyRight)
	if diff := cmp.Diff([]string{"2", "1", "3"}, b.ws.Snapshot().IDs()); diff != "" {
		t.Fatalf("live move mismatch (-want +got):\n%s", diff)
	}
	press(t, b, keyRight, keyEnter)
	if diff := cmp.Diff([]string{"2", "3", "1"}, b.ws.Snapshot().IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if b.ws.Snapshot().Version() != 2 {
		t.Fatalf("expected one version per distinct hover, got %d", b.ws.Snapshot().Version())
	}
	if b.cursor != 2 {
		t.Fatalf("expected cursor to follow the element, got %d", b.cursor)
	}
}

func TestBuilder_EscCancelsTemplateDrag(t *testing.T) {
	b := newTestBuilder(t)

	press(t, b, keyEnter, keyLeft, keyEsc)
	if b.dragging() {
		t.Fatalf("expected gesture cancelled")
	}
	if b.ws.Snapshot().Version() != 0 {
		t.Fatalf("cancel must not mutate, got version %d", b.ws.Snapshot().Version())
	}
	if b.status != "Drag cancelled." {
		t.Fatalf("unexpected status %q", b.status)
	}
}

func TestBuilder_EmptyCanvasGrabIsNoop(t *testing.T) {
	b := newTestBuilder(t, workspace.WithEmptyCanvas())

	press(t, b, keyTab, keyEnter)
	if b.dragging() {
		t.Fatalf("grab on an empty canvas must not start a gesture")
	}
}

func TestBuilder_Quit(t *testing.T) {
	b := newTestBuilder(t)

	press(t, b, keyEnter)
	cmd := press(t, b, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if b.dragging() {
		t.Fatalf("expected quit to abandon the gesture")
	}
}

func TestBuilder_View(t *testing.T) {
	b := newTestBuilder(t)
	b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := b.View()
	for _, fragment := range []string{"Form Builder", "Basic Elements", "Text Input", "Radio Group", "Name", "Type: select"} {
		if !strings.Contains(view, fragment) {
			t.Fatalf("expected view to contain %q\n%s", fragment, view)
		}
	}

	press(t, b, runes("p"))
	view = b.View()
	if !strings.Contains(view, "Preview") || !strings.Contains(view, "United Kingdom") {
		t.Fatalf("expected preview pane\n%s", view)
	}
}
