package canvas_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/dnd"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/renderers/canvas"
)

func seed() []model.PlacedElement {
	return []model.PlacedElement{
		{ID: "1", Type: model.TypeText, Label: "Name", Placeholder: "Enter your name", Required: true},
		{ID: "2", Type: model.TypeEmail, Label: "Email", Placeholder: "Enter your email"},
		{ID: "3", Type: model.TypeSelect, Label: "Country", Options: []string{"USA", "Canada"}},
	}
}

func newCanvas(t *testing.T, elements ...model.PlacedElement) (*layout.Store, *dnd.Coordinator, *canvas.View) {
	t.Helper()
	store, err := layout.NewStore(layout.WithElements(elements...))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	coord := dnd.New(store)
	t.Cleanup(coord.Close)
	return store, coord, canvas.New(coord, canvas.WithColumns(3))
}

func TestRender_Cards(t *testing.T) {
	store, _, view := newCanvas(t, seed()...)

	out := view.Render(store.Snapshot())
	for _, fragment := range []string{
		"Name", "Required", "Enter your name", "Type: text",
		"Email", "Type: email",
		"Country", "Enter country", "Type: select",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected canvas to contain %q\n%s", fragment, out)
		}
	}
	if strings.Count(out, "Required") != 1 {
		t.Fatalf("expected exactly one required marker\n%s", out)
	}
	if view.Rendered().Version() != store.Version() {
		t.Fatalf("rendered version %d, store version %d", view.Rendered().Version(), store.Version())
	}
}

func TestRender_Empty(t *testing.T) {
	store, _, view := newCanvas(t)

	out := view.Render(store.Snapshot())
	if !strings.Contains(out, canvas.EmptyMessage) {
		t.Fatalf("expected empty message\n%s", out)
	}
}

func TestRender_DropZoneWhileHoveringEnd(t *testing.T) {
	store, _, view := newCanvas(t, seed()...)
	view.Render(store.Snapshot())

	if err := view.DragTemplate(model.ElementTemplate{Type: model.TypeToggle, Label: "Toggle"}); err != nil {
		t.Fatalf("drag template: %v", err)
	}
	if err := view.HoverEmpty(); err != nil {
		t.Fatalf("hover empty: %v", err)
	}
	if out := view.Render(store.Snapshot()); !strings.Contains(out, canvas.DropMessage) {
		t.Fatalf("expected drop zone\n%s", out)
	}

	el, ok, err := view.Release()
	if err != nil || !ok {
		t.Fatalf("release: ok=%v err=%v", ok, err)
	}
	if got := store.Snapshot().IndexOf(el.ID); got != 3 {
		t.Fatalf("expected toggle appended at 3, got %d", got)
	}
	if out := view.Render(store.Snapshot()); strings.Contains(out, canvas.DropMessage) {
		t.Fatalf("drop zone should disappear after release\n%s", out)
	}
}

func TestGestures_Reorder(t *testing.T) {
	store, coord, view := newCanvas(t, seed()...)
	store.Subscribe(func(snap model.Snapshot) { view.Render(snap) })
	view.Render(store.Snapshot())

	if err := view.Grab(0); err != nil {
		t.Fatalf("grab: %v", err)
	}
	if err := view.HoverSlot(2); err != nil {
		t.Fatalf("hover: %v", err)
	}
	if _, ok, err := view.Release(); err != nil || ok {
		t.Fatalf("release: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff([]string{"2", "3", "1"}, store.Snapshot().IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if coord.State() != dnd.StateIdle {
		t.Fatalf("expected idle, got %s", coord.State())
	}
}

func TestGrab_OutsideRenderedGrid(t *testing.T) {
	store, coord, view := newCanvas(t, seed()...)
	view.Render(store.Snapshot())

	err := view.Grab(3)
	if !errors.Is(err, layout.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if coord.State() != dnd.StateIdle {
		t.Fatalf("expected idle, got %s", coord.State())
	}
}

func TestHoverSlot_OutsideRenderedGridCancels(t *testing.T) {
	store, coord, view := newCanvas(t, seed()...)
	view.Render(store.Snapshot())

	if err := view.Grab(1); err != nil {
		t.Fatalf("grab: %v", err)
	}
	err := view.HoverSlot(7)
	if !errors.Is(err, layout.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if coord.State() != dnd.StateIdle {
		t.Fatalf("expected gesture cancelled, got %s", coord.State())
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, store.Snapshot().IDs()); diff != "" {
		t.Fatalf("sequence changed (-want +got):\n%s", diff)
	}
}

func TestGrab_ResolvesStaleRenderByID(t *testing.T) {
	store, coord, view := newCanvas(t, seed()...)
	view.Render(store.Snapshot())

	store.InsertAt(model.ElementTemplate{Type: model.TypeCheckbox}, 0)

	if err := view.Grab(0); err != nil {
		t.Fatalf("grab: %v", err)
	}
	g, ok := coord.Gesture()
	if !ok {
		t.Fatalf("expected gesture in flight")
	}
	if g.ElementID != "1" || g.Current != 1 {
		t.Fatalf("expected element 1 at index 1, got %q at %d", g.ElementID, g.Current)
	}
}

func TestAbandon_WhileIdle(t *testing.T) {
	_, _, view := newCanvas(t, seed()...)
	if err := view.Abandon(); !errors.Is(err, dnd.ErrInvalidGestureState) {
		t.Fatalf("expected ErrInvalidGestureState, got %v", err)
	}
}
