package signalwall

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/labstack/gommon/log"
)

const testIndex = `[
  {"id": "wall-01", "lang": "en", "title": "First Wall", "excerpt": "one", "date": "2024-03-01", "file": "posts/wall-01.md"},
  {"id": "paw-01", "lang": "si", "title": "පළමු", "excerpt": "එක", "file": "posts/paw-01.html"},
  {"id": "wall-02", "lang": "en", "title": "Second Wall", "excerpt": "two", "date": "2024-03-02", "file": "posts/wall-02.html"},
  {"id": "gone", "lang": "en", "title": "Gone", "excerpt": "missing file", "file": "posts/gone.html"}
]`

func testLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"posts/posts.json":   {Data: []byte(testIndex)},
		"posts/wall-01.md":   {Data: []byte("---\ntitle: First Wall\n---\n# Hello\n\nFirst **post**.\n")},
		"posts/paw-01.html":  {Data: []byte("<p>පළමු ලිපිය</p>")},
		"posts/wall-02.html": {Data: []byte(`<p>Second</p><script>alert(1)</script>`)},
	}
}

func loadedStore(t testing.TB) *PostStore {
	t.Helper()
	s := NewPostStore(NewFSSource(testFS()), testLogger())
	if err := s.Load(bgCtx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"post", "wall-01"}, "https://example.com/post/wall-01/"},
		{"https://example.com/blog/", []string{"post", "a"}, "https://example.com/blog/post/a/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestPostJsonLD(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com", Author: "Nimal"}
	got := PostJsonLD(Post{ID: "wall-01", Lang: LangEnglish, Title: "First", Date: "2024-03-01"}, cfg)
	for _, want := range []string{
		`"@type":"BlogPosting"`,
		`"headline":"First"`,
		`"datePublished":"2024-03-01"`,
		`"url":"https://example.com/post/wall-01/"`,
		`"name":"Nimal"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PostJsonLD missing %s in %s", want, got)
		}
	}
	if strings.Contains(PostJsonLD(Post{ID: "x"}, cfg), "datePublished") {
		t.Error("expected no datePublished without a date")
	}
}

func TestPostLinks(t *testing.T) {
	tests := []struct {
		id        string
		link      string
		permalink string
	}{
		{"wall-01", "/post/wall-01/", "https://example.com/post/wall-01/"},
		{"a b", "/post/a%20b/", "https://example.com/post/a%20b/"},
	}
	for _, tt := range tests {
		p := Post{ID: tt.id}
		if got := p.Link(); got != tt.link {
			t.Errorf("Link(%q) = %q, want %q", tt.id, got, tt.link)
		}
		if got := p.Permalink("https://example.com"); got != tt.permalink {
			t.Errorf("Permalink(%q) = %q, want %q", tt.id, got, tt.permalink)
		}
	}
}
