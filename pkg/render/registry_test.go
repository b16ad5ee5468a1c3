package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.Snapshot, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubRenderer{name: "markdown"})
	reg.MustRegister(stubRenderer{name: "HTML"})

	if err := reg.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := reg.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if err := reg.Alias("md", "markdown"); err != nil {
		t.Fatalf("alias: %v", err)
	}
	if err := reg.Alias("htm", "missing"); err == nil {
		t.Fatalf("expected alias to unknown renderer to fail")
	}
	if err := reg.Alias("html", "markdown"); err == nil {
		t.Fatalf("expected alias shadowing a renderer to fail")
	}

	got, err := reg.Get("MD")
	if err != nil {
		t.Fatalf("get alias: %v", err)
	}
	if got.Name() != "markdown" {
		t.Fatalf("alias resolved to %q", got.Name())
	}
	if !reg.Has("html") {
		t.Fatalf("expected html registered")
	}
	if _, err := reg.Get("pdf"); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
	if diff := cmp.Diff([]string{"html", "markdown"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}
