package signalwall

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapURLs lists the home page, every nav screen, and every post page.
func (a *App) sitemapURLs(posts []Post) []sitemapURL {
	base := a.Config.URL
	urls := []sitemapURL{{Loc: BuildURL(base)}}
	for _, s := range a.Router.Screens() {
		if s.Nav {
			urls = append(urls, sitemapURL{Loc: BuildURL(base) + "?screen=" + PathEscape(s.Name)})
		}
	}
	for _, p := range posts {
		u := sitemapURL{Loc: p.Permalink(base)}
		if _, err := time.Parse("2006-01-02", p.Date); err == nil {
			u.LastMod = p.Date
		}
		urls = append(urls, u)
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context, posts []Post) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  a.sitemapURLs(posts),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
