package signalwall

import (
	"context"
	"testing"
	"testing/fstest"
)

var bgCtx = context.Background()

func TestPostStoreLoad(t *testing.T) {
	s := loadedStore(t)

	if !s.Loaded() {
		t.Fatal("expected store to be loaded")
	}
	if got := len(s.All()); got != 4 {
		t.Fatalf("All() = %d posts, want 4", got)
	}

	p, ok := s.Find("paw-01")
	if !ok {
		t.Fatal("expected paw-01 to be found")
	}
	if p.Lang != LangSinhala || p.Date != "" {
		t.Errorf("paw-01 = %+v", p)
	}
	if _, ok := s.Find("nope"); ok {
		t.Error("expected unknown id to be missing")
	}
}

func TestPostStoreByLangKeepsIndexOrder(t *testing.T) {
	s := loadedStore(t)

	tests := []struct {
		lang Lang
		want []string
	}{
		{LangEnglish, []string{"wall-01", "wall-02", "gone"}},
		{LangSinhala, []string{"paw-01"}},
		{Lang("fr"), nil},
	}
	for _, tt := range tests {
		got := s.ByLang(tt.lang)
		if len(got) != len(tt.want) {
			t.Errorf("ByLang(%q) = %d posts, want %d", tt.lang, len(got), len(tt.want))
			continue
		}
		for i, p := range got {
			if p.ID != tt.want[i] {
				t.Errorf("ByLang(%q)[%d] = %s, want %s", tt.lang, i, p.ID, tt.want[i])
			}
		}
	}
}

func TestPostStoreDropsDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/posts.json": {Data: []byte(`[
			{"id": "a", "lang": "en", "title": "First", "excerpt": "", "file": "posts/a.html"},
			{"id": "a", "lang": "si", "title": "Second", "excerpt": "", "file": "posts/b.html"}
		]`)},
	}
	s := NewPostStore(NewFSSource(fsys), testLogger())
	if err := s.Load(bgCtx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(s.All()); got != 1 {
		t.Fatalf("All() = %d posts, want 1", got)
	}
	if p, _ := s.Find("a"); p.Title != "First" {
		t.Errorf("Find(a).Title = %q, want First", p.Title)
	}
}

func TestPostStoreLoadFailure(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing index", fstest.MapFS{}},
		{"malformed index", fstest.MapFS{"posts/posts.json": {Data: []byte(`{"id":`)}}},
		{"not an array", fstest.MapFS{"posts/posts.json": {Data: []byte(`{"id": "a"}`)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPostStore(NewFSSource(tt.fsys), testLogger())
			if err := s.Load(bgCtx); err == nil {
				t.Fatal("expected error")
			}
			if s.Loaded() {
				t.Error("expected store to stay unloaded")
			}
			if len(s.All()) != 0 || len(s.ByLang(LangEnglish)) != 0 {
				t.Error("expected empty listings")
			}
		})
	}
}

func TestPostStoreFailedReloadKeepsPosts(t *testing.T) {
	fsys := testFS()
	s := NewPostStore(NewFSSource(fsys), testLogger())
	if err := s.Load(bgCtx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	fsys["posts/posts.json"] = &fstest.MapFile{Data: []byte(`not json`)}
	if err := s.Load(bgCtx); err == nil {
		t.Fatal("expected reload to fail")
	}
	if got := len(s.All()); got != 4 {
		t.Errorf("All() = %d posts after failed reload, want 4", got)
	}
}
