package signalwall

import (
	"strings"
	"testing"
)

func TestContentRendererMarkdown(t *testing.T) {
	r := NewContentRenderer()
	got, err := r.Render("posts/a.md", []byte("---\ntitle: Front\n---\n# Hello\n\nSome *text*.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{`<h1 id="hello">Hello</h1>`, "<em>text</em>", "<table>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "title: Front") {
		t.Errorf("front matter leaked into output:\n%s", got)
	}
}

func TestContentRendererMarkdownWithoutFrontMatter(t *testing.T) {
	got, err := NewContentRenderer().Render("a.markdown", []byte("plain paragraph"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(got) != "<p>plain paragraph</p>" {
		t.Errorf("Render = %q", got)
	}
}

func TestContentRendererSanitizes(t *testing.T) {
	tests := []struct {
		name, file, raw string
		want            string
		banned          string
	}{
		{"script in html", "a.html", `<p>ok</p><script>alert(1)</script>`, "<p>ok</p>", "<script"},
		{"event handler", "a.html", `<p onclick="x()">hi</p>`, "<p>hi</p>", "onclick"},
		{"javascript link", "a.htm", `<a href="javascript:alert(1)">x</a>`, "x", "javascript:"},
		{"raw html in markdown", "a.md", "hi <img src=x onerror=alert(1)>", "hi", "onerror"},
	}
	r := NewContentRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.file, []byte(tt.raw))
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q: %s", tt.want, got)
			}
			if strings.Contains(got, tt.banned) {
				t.Errorf("output contains %q: %s", tt.banned, got)
			}
		})
	}
}
