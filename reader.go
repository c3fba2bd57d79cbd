package signalwall

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	ReaderPlaceholder     = "Loading signal..."
	ReaderErrorMessage    = "Error loading content."
	DefaultCommentSubject = "Website Comment"

	// maxContentSize caps how much of a post file is read.
	maxContentSize = 4 << 20
)

// ErrContentTooLarge is returned for post files over the size cap.
var ErrContentTooLarge = errors.New("post file too large")

// ReaderView is the modal as shown right after a post is opened: visible,
// holding a placeholder until ContentURL has been fetched.
type ReaderView struct {
	Post        Post
	Placeholder string
	ContentURL  string
	CloseTo     string
	CSRF        string
}

// ReaderContent is the fetched body of an open post. Err is set when the
// file could not be loaded, in which case HTML is empty.
type ReaderContent struct {
	Post    Post
	HTML    string
	Subject string
	Err     error
}

// Reader opens posts into the modal and loads their content.
type Reader struct {
	posts    PostLookup
	source   Source
	renderer *ContentRenderer
}

// NewReader creates a reader that loads post files from src.
func NewReader(posts PostLookup, src Source, renderer *ContentRenderer) *Reader {
	return &Reader{posts: posts, source: src, renderer: renderer}
}

// Open returns the modal view for id. The bool is false when id is not
// loaded, and the caller must then leave the modal alone.
func (r *Reader) Open(id string) (ReaderView, bool) {
	p, ok := r.posts.Find(id)
	if !ok {
		return ReaderView{}, false
	}
	return ReaderView{
		Post:        p,
		Placeholder: ReaderPlaceholder,
		ContentURL:  p.Link() + "content/",
		CloseTo:     CloseRoute.Fragment(),
	}, true
}

// Content fetches and renders the file of post id. ErrPostNotFound is
// returned for unknown ids; any other error comes with a ReaderContent
// whose Err is set so the caller can still render the failure.
func (r *Reader) Content(ctx context.Context, id string) (ReaderContent, error) {
	p, ok := r.posts.Find(id)
	if !ok {
		return ReaderContent{}, ErrPostNotFound
	}
	out := ReaderContent{Post: p}
	html, err := r.load(ctx, p)
	if err != nil {
		out.Err = err
		return out, err
	}
	out.HTML = html
	out.Subject = CommentSubject(p)
	return out, nil
}

func (r *Reader) load(ctx context.Context, p Post) (string, error) {
	rc, err := r.source.Open(ctx, p.File)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", p.File, err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(io.LimitReader(rc, maxContentSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p.File, err)
	}
	if len(raw) > maxContentSize {
		return "", fmt.Errorf("read %s: %w", p.File, ErrContentTooLarge)
	}
	return r.renderer.Render(p.File, raw)
}

// CommentSubject is the mail subject for comments on p.
func CommentSubject(p Post) string {
	return "Comment: " + p.Title
}
