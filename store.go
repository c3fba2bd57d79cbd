package signalwall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/labstack/echo/v4"
)

// IndexPath is the location of the post index relative to the content root.
const IndexPath = "posts/posts.json"

// ErrPostNotFound is returned when a requested post id is not loaded.
var ErrPostNotFound = errors.New("post not found")

// PostStore holds the posts parsed from the index in memory. The list is
// replaced wholesale on load and never mutated in place, so readers can keep
// the slices they get.
type PostStore struct {
	mu     sync.RWMutex
	posts  []Post
	byID   map[string]int
	loaded bool

	source Source
	logger echo.Logger
}

// NewPostStore creates an empty store backed by src.
func NewPostStore(src Source, logger echo.Logger) *PostStore {
	return &PostStore{source: src, logger: logger, byID: map[string]int{}}
}

// Load fetches and parses the post index. A failure is logged and leaves the
// current list untouched, which is empty on the first load; the error is
// still returned so callers can report it.
func (s *PostStore) Load(ctx context.Context) error {
	posts, err := s.fetch(ctx)
	if err != nil {
		s.logger.Errorf("load posts: %v", err)
		return err
	}
	s.replace(posts)
	s.logger.Infof("loaded %d posts from %s", len(posts), IndexPath)
	return nil
}

func (s *PostStore) fetch(ctx context.Context) ([]Post, error) {
	rc, err := s.source.Open(ctx, IndexPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", IndexPath, err)
	}
	defer rc.Close()
	return parseIndex(rc, s.logger)
}

// parseIndex decodes the index array. Later entries reusing an id are dropped.
func parseIndex(r io.Reader, logger echo.Logger) ([]Post, error) {
	var raw []Post
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", IndexPath, err)
	}
	seen := make(map[string]struct{}, len(raw))
	posts := make([]Post, 0, len(raw))
	for _, p := range raw {
		if _, dup := seen[p.ID]; dup {
			logger.Warnf("duplicate post id %q dropped", p.ID)
			continue
		}
		seen[p.ID] = struct{}{}
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *PostStore) replace(posts []Post) {
	byID := make(map[string]int, len(posts))
	for i, p := range posts {
		byID[p.ID] = i
	}
	s.mu.Lock()
	s.posts = posts
	s.byID = byID
	s.loaded = true
	s.mu.Unlock()
}

// Loaded reports whether an index has been parsed successfully.
func (s *PostStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// All returns every loaded post in index order.
func (s *PostStore) All() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

// Find looks up a post by id.
func (s *PostStore) Find(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return Post{}, false
	}
	return s.posts[i], true
}

// ByLang returns the posts of one language in index order.
func (s *PostStore) ByLang(lang Lang) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Post
	for _, p := range s.posts {
		if p.Lang == lang {
			out = append(out, p)
		}
	}
	return out
}
