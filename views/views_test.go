package views

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/signalwall"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestCard(t *testing.T) {
	got := render(t, Card(signalwall.Post{
		ID:      "wall-01",
		Lang:    signalwall.LangEnglish,
		Title:   "Tom & <Jerry>",
		Excerpt: `say "hi"`,
		Date:    "2024-03-01",
	}))

	for _, want := range []string{
		`<a class="post-card" data-post-id="wall-01" data-lang="en" href="#post=wall-01">`,
		`<div class="post-meta">2024-03-01</div>`,
		`<h3>Tom &amp; &lt;Jerry&gt;</h3>`,
		`<p>say &#34;hi&#34;</p>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("card missing %q:\n%s", want, got)
		}
	}
}

func TestCardWithoutDate(t *testing.T) {
	got := render(t, Card(signalwall.Post{ID: "x", Lang: signalwall.LangSinhala, Title: "t"}))
	if !strings.Contains(got, `<div class="post-meta"></div>`) {
		t.Errorf("expected empty meta line:\n%s", got)
	}
}

func TestGrid(t *testing.T) {
	posts := []signalwall.Post{
		{ID: "b", Lang: signalwall.LangSinhala, Title: "B"},
		{ID: "a", Lang: signalwall.LangSinhala, Title: "A"},
	}
	got := render(t, Grid("pawaura-grid", signalwall.LangSinhala, posts))

	if !strings.HasPrefix(got, `<div id="pawaura-grid" class="post-grid" lang="si">`) {
		t.Errorf("grid open tag:\n%s", got)
	}
	if strings.Index(got, `data-post-id="b"`) > strings.Index(got, `data-post-id="a"`) {
		t.Error("cards not in given order")
	}
	if empty := render(t, Grid("wall-grid", signalwall.LangEnglish, nil)); strings.Contains(empty, "post-card") {
		t.Errorf("empty grid has cards: %s", empty)
	}
}

func TestReaderBody(t *testing.T) {
	ok := render(t, ReaderBody(signalwall.ReaderContent{HTML: "<p>body</p>"}))
	if ok != "<p>body</p>" {
		t.Errorf("body = %q", ok)
	}

	failed := render(t, ReaderBody(signalwall.ReaderContent{HTML: "<p>ignored</p>", Err: errors.New("boom")}))
	if failed != "<p>"+signalwall.ReaderErrorMessage+"</p>" {
		t.Errorf("error body = %q", failed)
	}
}

func TestSparkles(t *testing.T) {
	got := render(t, Sparkles([]signalwall.Particle{
		{X: 5, Y: 7, Color: "#FFFFFF", TX: -12.5, TY: 3, TTL: 800 * time.Millisecond},
	}))
	want := `<div class="sparkle" data-ttl="800" style="left:5px;top:7px;background-color:#FFFFFF;--tx:-12.5px;--ty:3.0px"></div>`
	if got != want {
		t.Errorf("sparkle = %q\nwant      %q", got, want)
	}
}

func TestStageMarksOneScreenActive(t *testing.T) {
	got := render(t, Stage(signalwall.PageData{
		State:   signalwall.ViewState{Screen: signalwall.ScreenWire, ActiveNav: signalwall.ScreenWire},
		Screens: signalwall.DefaultScreens,
	}))

	if n := strings.Count(got, `class="screen active"`); n != 1 {
		t.Errorf("active screens = %d, want 1", n)
	}
	if n := strings.Count(got, `class="nav-btn active"`); n != 1 {
		t.Errorf("active nav buttons = %d, want 1", n)
	}
	if strings.Contains(got, `data-target="gateway"`) {
		t.Error("gateway should have no nav button")
	}
	if !strings.Contains(got, `<form id="wire-form" method="post" action="/wire/">`) {
		t.Error("wire screen has no contact form")
	}
}

func TestLabels(t *testing.T) {
	if got := ScreenLabel("pawaura"); got != "Pawaura" {
		t.Errorf("ScreenLabel = %q", got)
	}
	if got := LangAttr(signalwall.LangSinhala); got != "si" {
		t.Errorf("LangAttr(si) = %q", got)
	}
	if got := LangAttr("fr"); got != "fr" {
		t.Errorf("LangAttr(fr) = %q", got)
	}
}
