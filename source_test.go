package signalwall

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func readAll(t *testing.T, src Source, name string) string {
	t.Helper()
	rc, err := src.Open(context.Background(), name)
	if err != nil {
		t.Fatalf("Open(%q): %v", name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestDirSourceOpen(t *testing.T) {
	src := NewFSSource(testFS())

	for _, name := range []string{"posts/paw-01.html", "/posts/paw-01.html", "./posts/paw-01.html"} {
		if got := readAll(t, src, name); got != "<p>පළමු ලිපිය</p>" {
			t.Errorf("Open(%q) = %q", name, got)
		}
	}

	for _, name := range []string{"", "/", "../secret", "posts/../../etc/passwd"} {
		if _, err := src.Open(context.Background(), name); err == nil {
			t.Errorf("Open(%q) expected error", name)
		}
	}
}

func TestDirSourceHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFSSource(testFS()).Open(ctx, "posts/posts.json"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestHTTPSourceOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/posts/posts.json":
			w.Write([]byte(testIndex))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src, err := NewSource(srv.URL + "/site")
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if _, ok := src.(*HTTPSource); !ok {
		t.Fatalf("NewSource returned %T, want *HTTPSource", src)
	}

	if got := readAll(t, src, IndexPath); got != testIndex {
		t.Errorf("index body = %q", got)
	}
	if _, err := src.Open(context.Background(), "posts/missing.html"); err == nil {
		t.Error("expected error for 404")
	}

	s := NewPostStore(src, testLogger())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load over HTTP: %v", err)
	}
	if got := len(s.All()); got != 4 {
		t.Errorf("All() = %d, want 4", got)
	}
}

func TestNewSourcePicksDirForPaths(t *testing.T) {
	src, err := NewSource("content")
	if err != nil {
		t.Fatal(err)
	}
	ds, ok := src.(*DirSource)
	if !ok {
		t.Fatalf("NewSource returned %T, want *DirSource", src)
	}
	if ds.Dir() != "content" {
		t.Errorf("Dir() = %q", ds.Dir())
	}
}
