package signalwall

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/signalwall/analytics"
)

// HeaderRouteTarget tells the page shell which region a /route/ response replaces.
const HeaderRouteTarget = "X-Route-Target"

func (a *App) pageData(c echo.Context, state ViewState) PageData {
	return PageData{
		Site:    a.Config,
		State:   state,
		Screens: a.Router.Screens(),
		Wall:    a.Posts.ByLang(LangEnglish),
		Pawaura: a.Posts.ByLang(LangSinhala),
		Reading: readingMode(c),
		CSRF:    CsrfToken(c),
	}
}

// handleHome renders the full page, optionally already on ?screen=.
func (a *App) handleHome(c echo.Context) error {
	route := Route{Kind: RouteGateway}
	if name := c.QueryParam("screen"); name != "" {
		route = ShowScreen(name)
	}
	return Render(c, a.Views.Page(a.pageData(c, a.Router.Dispatch(route))))
}

// handlePostPage renders the full page with the reader open over the
// post's listing screen.
func (a *App) handlePostPage(c echo.Context) error {
	id := c.Param("id")
	state := a.Router.Dispatch(OpenPost(id))
	if !state.Changed {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	state.Screen = ScreenForLang(state.Post.Lang)
	state.ActiveNav = state.Screen
	view, _ := a.Reader.Open(id)
	view.CSRF = CsrfToken(c)
	data := a.pageData(c, state)
	data.Reader = &view
	return Render(c, a.Views.Page(data))
}

// handleRoute dispatches a location fragment sent by the page shell.
func (a *App) handleRoute(c echo.Context) error {
	state := a.Router.Dispatch(ParseRoute(c.QueryParam("fragment")))
	if !state.Changed {
		return c.NoContent(http.StatusNoContent)
	}
	if state.ModalOpen {
		view, ok := a.Reader.Open(state.Post.ID)
		if !ok {
			return c.NoContent(http.StatusNoContent)
		}
		view.CSRF = CsrfToken(c)
		c.Response().Header().Set(HeaderRouteTarget, "reader")
		return Render(c, a.Views.Reader(view))
	}
	c.Response().Header().Set(HeaderRouteTarget, "screens")
	return Render(c, a.Views.Stage(a.pageData(c, state)))
}

// handlePostContent loads the body of an open post. Failures render the
// inline error message rather than an error page.
func (a *App) handlePostContent(c echo.Context) error {
	id := c.Param("id")
	content, err := a.Reader.Content(c.Request().Context(), id)
	if errors.Is(err, ErrPostNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		c.Logger().Errorf("load post %s: %v", id, err)
		return Render(c, a.Views.ReaderBody(content))
	}
	if err := setCommentSubject(c, content.Subject); err != nil {
		c.Logger().Warnf("stash comment subject: %v", err)
	}
	a.recordRead(c, content.Post)
	return Render(c, a.Views.ReaderBody(content))
}

func (a *App) recordRead(c echo.Context, p Post) {
	if a.reads == nil {
		return
	}
	ua := c.Request().UserAgent()
	if analytics.IsBot(ua) {
		return
	}
	err := a.reads.RecordRead(analytics.Read{
		PostID:    p.ID,
		Lang:      string(p.Lang),
		VisitorID: analytics.HashVisitor(c.RealIP(), ua),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		c.Logger().Errorf("record read %s: %v", p.ID, err)
	}
}

func (a *App) handleSayIt(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}
	comment := Comment{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Country: strings.TrimSpace(c.FormValue("country")),
		Text:    c.FormValue("text"),
	}
	if comment.empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "empty comment")
	}
	return respondMailto(c, a.Mail.Comment(comment, a.commentSubjectFor(c)))
}

// commentSubjectFor prefers the post the form was rendered for, so each open
// tab keeps its own subject, then the subject stashed by the last load.
func (a *App) commentSubjectFor(c echo.Context) string {
	if id := c.FormValue("post_id"); id != "" {
		if p, ok := a.Posts.Find(id); ok {
			return CommentSubject(p)
		}
	}
	return commentSubject(c)
}

func (a *App) handleWire(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}
	msg := c.FormValue("message")
	if strings.TrimSpace(msg) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty message")
	}
	return respondMailto(c, a.Mail.Contact(msg))
}

// respondMailto hands the composed URI to the page shell as JSON, or
// redirects plain form posts straight to it.
func respondMailto(c echo.Context, href string) error {
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, map[string]string{"href": href})
	}
	return c.Redirect(http.StatusSeeOther, href)
}

func (a *App) handleSparkle(c echo.Context) error {
	x, errX := strconv.Atoi(c.QueryParam("x"))
	y, errY := strconv.Atoi(c.QueryParam("y"))
	if errX != nil || errY != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "x and y must be integers")
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return Render(c, a.Views.Sparkles(Burst(x, y, rng)))
}

func (a *App) handleReadingMode(c echo.Context) error {
	on, err := toggleReadingMode(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"reading": on})
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Posts.All())
}

// handleFeed serves all posts, or one language with ?lang=.
func (a *App) handleFeed(c echo.Context) error {
	posts := a.Posts.All()
	if lang := c.QueryParam("lang"); lang != "" {
		posts = a.Posts.ByLang(Lang(lang))
	}
	return a.renderRSS(c, posts)
}

// handleRobots generates robots.txt using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /route/\nDisallow: /sparkle/\n\nSitemap: %s/sitemap.xml\n", strings.TrimRight(a.Config.URL, "/"))
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
