package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/signalwall"
)

// Card renders one post for a listing grid. Activating it sets the location
// fragment to #post=<id>. A missing date renders as an empty meta line.
func Card(p signalwall.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		writeCard(h, p)
		return h.err
	})
}

func writeCard(h *html, p signalwall.Post) {
	h.raw(`<a class="post-card" data-post-id="`)
	h.text(p.ID)
	h.raw(`" data-lang="`)
	h.text(string(p.Lang))
	h.raw(`" href="`)
	h.text(signalwall.OpenPost(p.ID).Fragment())
	h.raw(`"><div class="post-meta">`)
	h.text(p.Date)
	h.raw(`</div><h3>`)
	h.text(p.Title)
	h.raw(`</h3><p>`)
	h.text(p.Excerpt)
	h.raw(`</p></a>`)
}

// Grid renders a listing region holding posts in the order given.
func Grid(id string, lang signalwall.Lang, posts []signalwall.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		writeGrid(h, id, lang, posts)
		return h.err
	})
}

func writeGrid(h *html, id string, lang signalwall.Lang, posts []signalwall.Post) {
	h.raw(`<div id="`)
	h.text(id)
	h.raw(`" class="post-grid" lang="`)
	h.text(LangAttr(lang))
	h.raw(`">`)
	for _, p := range posts {
		writeCard(h, p)
	}
	h.raw(`</div>`)
}
