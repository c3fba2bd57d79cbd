package signalwall

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// buildRSS maps posts to feed items in index order. The channel language is
// set only when every post shares one.
func (a *App) buildRSS(posts []Post) rssXML {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	langs := map[Lang]struct{}{}
	for _, p := range posts {
		langs[p.Lang] = struct{}{}
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := p.Permalink(base)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	channel := rssChannel{
		Title:       a.Config.Name,
		Link:        base,
		Description: a.Config.Description,
		Items:       items,
	}
	if len(langs) == 1 {
		for l := range langs {
			channel.Language = string(l)
		}
	}
	return rssXML{Version: "2.0", Channel: channel}
}

func (a *App) renderRSS(c echo.Context, posts []Post) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(a.buildRSS(posts))
}
