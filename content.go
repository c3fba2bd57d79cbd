package signalwall

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ContentRenderer turns a post file into HTML that is safe to insert into
// the reader. Markdown files are converted first; every result passes the
// sanitizer.
type ContentRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewContentRenderer builds a renderer with GFM enabled and a UGC policy.
func NewContentRenderer() *ContentRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span", "div", "p")
	return &ContentRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		policy: policy,
	}
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Render converts raw, the content of the file called name, to sanitized HTML.
func (r *ContentRenderer) Render(name string, raw []byte) (string, error) {
	if !isMarkdown(name) {
		return string(r.policy.SanitizeBytes(raw)), nil
	}
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return "", fmt.Errorf("front matter %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("markdown %s: %w", name, err)
	}
	return string(r.policy.SanitizeBytes(buf.Bytes())), nil
}
