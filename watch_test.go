package signalwall

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchIndexReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	postsDir := filepath.Join(dir, "posts")
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	index := filepath.Join(postsDir, "posts.json")
	if err := os.WriteFile(index, []byte(testIndex), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewPostStore(NewDirSource(dir), testLogger())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	stop, err := WatchIndex(context.Background(), dir, store)
	if err != nil {
		t.Fatalf("WatchIndex: %v", err)
	}
	defer stop()

	updated := `[{"id": "only", "lang": "en", "title": "Only", "excerpt": "", "file": "posts/only.html"}]`
	if err := os.WriteFile(index, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Find("only"); ok && len(store.All()) == 1 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("store not reloaded, has %d posts", len(store.All()))
}

func TestAppWatchIndexNeedsLocalDir(t *testing.T) {
	a := &App{source: NewFSSource(testFS())}
	if err := a.watchIndex(context.Background()); err == nil {
		t.Fatal("expected error for a source without a directory")
	}
}
