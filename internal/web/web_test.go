package web

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl := Templates()

	for _, name := range []string{"index.tmpl", "add_author.tmpl", "add_book.tmpl", "header", "footer"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("expected template %q to be defined", name)
		}
	}
}

func TestTemplates_RenderMessageEscaped(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{
		"Title":       "Catalog",
		"Message":     "<b>No books found</b>",
		"MessageKind": "info",
		"Sort":        "author",
		"Search":      "",
		"Books":       nil,
	}
	if err := Templates().ExecuteTemplate(&buf, "index.tmpl", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "&lt;b&gt;No books found&lt;/b&gt;") {
		t.Errorf("expected escaped message, got %s", buf.String())
	}
}

func TestStatic_ServesScript(t *testing.T) {
	f, err := Static().Open("script.js")
	if err != nil {
		t.Fatalf("open script.js: %v", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "add_author") {
		t.Errorf("unexpected script contents")
	}
}
