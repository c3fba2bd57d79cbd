package signalwall

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	readerSessionName = "reader_session"

	keyCommentSubject = "comment_subject"
	keyReadingMode    = "reading_mode"
)

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 12,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// commentSubject returns the subject stashed by the last successful post
// load, or DefaultCommentSubject.
func commentSubject(c echo.Context) string {
	sess, err := session.Get(readerSessionName, c)
	if err != nil {
		return DefaultCommentSubject
	}
	if s, ok := sess.Values[keyCommentSubject].(string); ok && s != "" {
		return s
	}
	return DefaultCommentSubject
}

func setCommentSubject(c echo.Context, subject string) error {
	sess, err := session.Get(readerSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[keyCommentSubject] = subject
	return sess.Save(c.Request(), c.Response())
}

func readingMode(c echo.Context) bool {
	sess, err := session.Get(readerSessionName, c)
	if err != nil {
		return false
	}
	on, _ := sess.Values[keyReadingMode].(bool)
	return on
}

func toggleReadingMode(c echo.Context) (bool, error) {
	sess, err := session.Get(readerSessionName, c)
	if err != nil {
		return false, err
	}
	on, _ := sess.Values[keyReadingMode].(bool)
	sess.Values[keyReadingMode] = !on
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return false, err
	}
	return !on, nil
}
