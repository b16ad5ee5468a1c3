package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/catalog"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCatalog_Table(t *testing.T) {
	out, _, err := execute(t, "catalog")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	for _, fragment := range []string{"TYPE", "textarea", "Text Area", "Basic Elements", "Option 1, Option 2"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output\n%s", fragment, out)
		}
	}
}

func TestCatalog_YAMLRoundTripsThroughLoader(t *testing.T) {
	out, _, err := execute(t, "catalog", "--format", "yaml")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	path := filepath.Join(t.TempDir(), "elements.yaml")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := catalog.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(catalog.Default().Types(), loaded.Types()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	var doc struct {
		Templates []struct {
			Type string `yaml:"type"`
		} `yaml:"templates"`
	}
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Templates) != catalog.Default().Len() {
		t.Fatalf("expected %d templates, got %d", catalog.Default().Len(), len(doc.Templates))
	}
}

func TestCatalog_CustomBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	bundle := `{"templates":[{"type":"rating","label":"Rating"}]}`
	if err := os.WriteFile(path, []byte(bundle), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, _, err := execute(t, "--catalog", path, "catalog", "--format", "json")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if !strings.Contains(out, `"type": "rating"`) {
		t.Fatalf("expected custom template\n%s", out)
	}
}

func TestPreview_EditsApplyInOrder(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "add then move",
			args: []string{"--add", "toggle@1", "--move", "0:2"},
			want: []string{"4", "2", "1", "3"},
		},
		{
			name: "move then add",
			args: []string{"--move", "0:2", "--add", "toggle@1"},
			want: []string{"2", "4", "3", "1"},
		},
		{
			name: "add without index appends",
			args: []string{"--add", "radio"},
			want: []string{"1", "2", "3", "4"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"preview", "--format", "json"}, tc.args...)
			out, _, err := execute(t, args...)
			if err != nil {
				t.Fatalf("preview: %v", err)
			}
			var form preview.Form
			if err := json.Unmarshal([]byte(out), &form); err != nil {
				t.Fatalf("decode: %v\n%s", err, out)
			}
			if diff := cmp.Diff(tc.want, form.IDs()); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreview_AppendPolicy(t *testing.T) {
	out, _, err := execute(t, "--append", "preview", "--format", "json", "--add", "toggle@0")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	var form preview.Form
	if err := json.Unmarshal([]byte(out), &form); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, form.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestPreview_Markdown(t *testing.T) {
	out, _, err := execute(t, "--empty", "preview", "--format", "markdown", "--title", "Signup", "--add", "text", "--add", "email")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	for _, fragment := range []string{"# Signup", "1. **Text Input** | text input", "2. **Email** | email input"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output\n%s", fragment, out)
		}
	}
}

func TestPreview_HTMLToFileWithTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.html")
	_, stderr, err := execute(t, "preview", "--theme", "acme", "--stylesheet", "/css/acme.css", "--output", path)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(stderr, "Preview written to") {
		t.Fatalf("expected confirmation on stderr, got %q", stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	html := string(data)
	for _, fragment := range []string{`data-theme="acme"`, `href="/css/acme.css"`, `data-element-id="3"`} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in html\n%s", fragment, html)
		}
	}
}

func TestPreview_Errors(t *testing.T) {
	if _, _, err := execute(t, "preview", "--add", "signature@0"); !errors.Is(err, catalog.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if _, _, err := execute(t, "preview", "--move", "0:9"); !errors.Is(err, layout.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, _, err := execute(t, "preview", "--format", "pdf"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if _, _, err := execute(t, "preview", "--move", "oops"); err == nil {
		t.Fatalf("expected flag parse error")
	}
}

func TestParseAdd(t *testing.T) {
	tests := []struct {
		in      string
		typ     string
		index   int
		wantErr bool
	}{
		{in: "select@1", typ: "select", index: 1},
		{in: " toggle ", typ: "toggle", index: -1},
		{in: "text@0", typ: "text", index: 0},
		{in: "@2", wantErr: true},
		{in: "text@-1", wantErr: true},
		{in: "text@x", wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseAdd(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got.typ != tc.typ || got.index != tc.index {
				t.Fatalf("got %s@%d, want %s@%d", got.typ, got.index, tc.typ, tc.index)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	got, err := parseMove("0:2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.from != 0 || got.to != 2 {
		t.Fatalf("unexpected move %d:%d", got.from, got.to)
	}
	for _, bad := range []string{"2", "a:1", "1:b"} {
		if _, err := parseMove(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
