// Package views holds the default templ components for a signalwall site.
package views

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/signalwall"
)

// Funcs returns the default component set.
func Funcs() signalwall.ViewFuncs {
	return signalwall.ViewFuncs{
		Page:        Page,
		Stage:       Stage,
		Reader:      Reader,
		ReaderBody:  ReaderBody,
		Sparkles:    Sparkles,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// html accumulates the first write error so components can write without
// checking every call.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// ScreenLabel is the nav caption for a screen name.
func ScreenLabel(name string) string {
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(name)
}

// langTags maps the listing languages to their BCP 47 tags.
var langTags = map[signalwall.Lang]language.Tag{
	signalwall.LangEnglish: language.English,
	signalwall.LangSinhala: language.Sinhala,
}

// LangAttr returns the value for an HTML lang attribute.
func LangAttr(l signalwall.Lang) string {
	if tag, ok := langTags[l]; ok {
		return tag.String()
	}
	return string(l)
}

// NavClass returns CSS classes for a nav button, with active variant.
func NavClass(active bool) string {
	if active {
		return "nav-btn active"
	}
	return "nav-btn"
}

// ScreenClass returns CSS classes for a screen section, with active variant.
func ScreenClass(active bool) string {
	if active {
		return "screen active"
	}
	return "screen"
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "px"
}
