package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/signalwall"
)

// Page renders the whole document: head, the stage (nav and screens), the
// reader modal, and the sparkle layer.
func Page(p signalwall.PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		meta := pageMeta(p)
		writeHead(h, p, meta)
		if p.Reading {
			h.raw(`<body class="reading-mode">`)
		} else {
			h.raw(`<body>`)
		}
		h.raw(`<div id="sparkles" aria-hidden="true"></div>`)
		h.raw(`<button id="toggle-read-mode" type="button">Read mode</button>`)
		writeStage(h, p)
		if p.Reader != nil {
			writeReader(h, *p.Reader)
		} else {
			h.raw(`<div id="reader-modal" class="modal" style="display:none"></div>`)
		}
		h.raw(`</body></html>`)
		return h.err
	})
}

func pageMeta(p signalwall.PageData) signalwall.PageMeta {
	if p.Reader != nil {
		post := p.Reader.Post
		return signalwall.PageMeta{
			Title:       post.Title + " | " + p.Site.Name,
			Description: post.Excerpt,
			URL:         post.Permalink(p.Site.URL),
			OGType:      "article",
		}
	}
	return signalwall.PageMeta{
		Title:       p.Site.Name,
		Description: p.Site.Description,
		URL:         signalwall.BuildURL(p.Site.URL),
		OGType:      "website",
	}
}

func writeHead(h *html, p signalwall.PageData, meta signalwall.PageMeta) {
	h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
	h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.raw(`<title>`)
	h.text(meta.Title)
	h.raw(`</title><meta name="description" content="`)
	h.text(meta.Description)
	h.raw(`"><link rel="canonical" href="`)
	h.text(meta.URL)
	h.raw(`"><meta property="og:title" content="`)
	h.text(meta.Title)
	h.raw(`"><meta property="og:type" content="`)
	h.text(meta.OGType)
	h.raw(`"><meta property="og:url" content="`)
	h.text(meta.URL)
	h.raw(`"><meta name="csrf-token" content="`)
	h.text(p.CSRF)
	h.raw(`">`)
	h.raw(`<link rel="stylesheet" href="/public/style.css">`)
	h.raw(`<link rel="alternate" type="application/rss+xml" title="Wall" href="/feed.xml?lang=en">`)
	h.raw(`<link rel="alternate" type="application/rss+xml" title="Pawaura" href="/feed.xml?lang=si">`)
	h.raw(`<script type="application/ld+json">`)
	if p.Reader != nil {
		h.raw(signalwall.PostJsonLD(p.Reader.Post, p.Site))
	} else {
		h.raw(signalwall.WebsiteJsonLD(p.Site))
	}
	h.raw(`</script><script src="/public/router.js" defer></script></head>`)
}

// Stage renders the nav and every screen; exactly one screen is active.
func Stage(p signalwall.PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		writeStage(h, p)
		return h.err
	})
}

func writeStage(h *html, p signalwall.PageData) {
	active := p.State.Screen
	if active == "" {
		active = signalwall.ScreenGateway
	}
	h.raw(`<div id="stage"><nav class="nav">`)
	for _, s := range p.Screens {
		if !s.Nav {
			continue
		}
		h.raw(`<a class="`, NavClass(p.State.ActiveNav == s.Name), `" data-target="`)
		h.text(s.Name)
		h.raw(`" href="`)
		h.text(signalwall.ShowScreen(s.Name).Fragment())
		h.raw(`">`)
		h.text(ScreenLabel(s.Name))
		h.raw(`</a>`)
	}
	h.raw(`</nav><main id="screens">`)
	for _, s := range p.Screens {
		h.raw(`<section class="`, ScreenClass(s.Name == active), `" id="`)
		h.text(s.Name)
		h.raw(`">`)
		writeScreenBody(h, p, s.Name)
		h.raw(`</section>`)
	}
	h.raw(`</main></div>`)
}

func writeScreenBody(h *html, p signalwall.PageData, name string) {
	switch name {
	case signalwall.ScreenGateway:
		h.raw(`<h1>`)
		h.text(p.Site.Name)
		h.raw(`</h1><p>`)
		h.text(p.Site.Description)
		h.raw(`</p><div class="gateway-links">`)
		for _, target := range []string{signalwall.ScreenWall, signalwall.ScreenPawaura} {
			h.raw(`<a class="gateway-link" href="`)
			h.text(signalwall.ShowScreen(target).Fragment())
			h.raw(`">`)
			h.text(ScreenLabel(target))
			h.raw(`</a>`)
		}
		h.raw(`</div>`)
	case signalwall.ScreenWall:
		writeGrid(h, "wall-grid", signalwall.LangEnglish, p.Wall)
	case signalwall.ScreenPawaura:
		writeGrid(h, "pawaura-grid", signalwall.LangSinhala, p.Pawaura)
	case signalwall.ScreenWire:
		h.raw(`<form id="wire-form" method="post" action="/wire/">`)
		writeCSRF(h, p.CSRF)
		h.raw(`<label for="contact-msg">Message</label>`)
		h.raw(`<textarea id="contact-msg" name="message" required></textarea>`)
		h.raw(`<button type="submit">Send</button></form>`)
	}
}

func writeCSRF(h *html, token string) {
	h.raw(`<input type="hidden" name="_csrf" value="`)
	h.text(token)
	h.raw(`">`)
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return simplePage("Not found", "Nothing is broadcasting on this channel.")
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return simplePage("Something went wrong", "The signal dropped. Try again in a moment.")
}

func simplePage(title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="/public/style.css"></head><body><main class="error-page"><h1>`)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(message)
		h.raw(`</p><p><a href="/">Back to the gateway</a></p></main></body></html>`)
		return h.err
	})
}
