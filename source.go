package signalwall

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// Source resolves content paths (the post index and post files) relative to
// a content root.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// NewSource picks an HTTPSource for http(s) locations and a DirSource for
// everything else.
func NewSource(location string) (Source, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		src, err := NewHTTPSource(location, nil)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return NewDirSource(location), nil
}

// DirSource reads content from a file system tree.
type DirSource struct {
	fsys fs.FS
	dir  string
}

// NewDirSource serves content from the local directory dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{fsys: os.DirFS(dir), dir: dir}
}

// NewFSSource serves content from an arbitrary fs.FS.
func NewFSSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Dir returns the local directory backing the source, or "" for an fs.FS.
func (s *DirSource) Dir() string {
	return s.dir
}

func (s *DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := cleanContentPath(name)
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("invalid content path %q", name)
	}
	return s.fsys.Open(clean)
}

// cleanContentPath turns page-relative paths like "./posts/a.html" or
// "/posts/a.html" into fs paths.
func cleanContentPath(name string) string {
	name = strings.TrimLeft(name, "/")
	return path.Clean(name)
}

// HTTPSource fetches content from a base URL.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPSource resolves content paths against base. A nil client means
// http.DefaultClient.
func NewHTTPSource(base string, client *http.Client) (*HTTPSource, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse content url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{base: u, client: client}, nil
}

func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	ref, err := url.Parse(strings.TrimLeft(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse content path %q: %w", name, err)
	}
	target := s.base.ResolveReference(ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", target, resp.Status)
	}
	return resp.Body, nil
}
