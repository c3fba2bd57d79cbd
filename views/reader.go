package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/signalwall"
)

// Reader renders the open modal with its placeholder and the comment form.
func Reader(r signalwall.ReaderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		writeReader(h, r)
		return h.err
	})
}

func writeReader(h *html, r signalwall.ReaderView) {
	h.raw(`<div id="reader-modal" class="modal" style="display:block"><div class="modal-content">`)
	h.raw(`<button type="button" class="close-modal" aria-label="Close" data-close-fragment="`)
	h.text(r.CloseTo)
	h.raw(`">&times;</button>`)
	h.raw(`<article id="reader-body" data-content-url="`)
	h.text(r.ContentURL)
	h.raw(`"><p>`)
	h.text(r.Placeholder)
	h.raw(`</p></article>`)
	h.raw(`<form id="say-it-form" method="post" action="/say-it/">`)
	writeCSRF(h, r.CSRF)
	h.raw(`<input type="hidden" name="post_id" value="`)
	h.text(r.Post.ID)
	h.raw(`">`)
	h.raw(`<input id="comment-name" name="name" placeholder="Name" required>`)
	h.raw(`<input id="comment-country" name="country" placeholder="Country" required>`)
	h.raw(`<textarea id="comment-text" name="text" placeholder="Say it" required></textarea>`)
	h.raw(`<button type="submit">Say it</button></form></div></div>`)
}

// ReaderBody renders fetched post content, or the inline error message.
// The HTML has already been sanitized by the content renderer.
func ReaderBody(c signalwall.ReaderContent) templ.Component {
	if c.Err != nil {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			h := &html{w: w}
			h.raw(`<p>`)
			h.text(signalwall.ReaderErrorMessage)
			h.raw(`</p>`)
			return h.err
		})
	}
	return templ.Raw(c.HTML)
}

// Sparkles renders particles for the page shell to append; each removes
// itself after data-ttl milliseconds.
func Sparkles(ps []signalwall.Particle) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		for _, p := range ps {
			h.raw(`<div class="sparkle" data-ttl="`, strconv.FormatInt(p.TTL.Milliseconds(), 10), `" style="`)
			h.text("left:" + strconv.Itoa(p.X) + "px;top:" + strconv.Itoa(p.Y) + "px;background-color:" + p.Color +
				";--tx:" + px(p.TX) + ";--ty:" + px(p.TY))
			h.raw(`"></div>`)
		}
		return h.err
	})
}
