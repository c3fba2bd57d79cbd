// Package signalwall serves a two-language blog wall built with Go, Echo, and templ.
// It loads a JSON post index once, renders the listings and a modal reader,
// routes location fragments to screens and posts, and turns the comment and
// contact forms into mailto: links.
//
// Users provide their own templ components via the ViewFuncs struct,
// and signalwall handles the routing, content loading, sessions, and feeds.
package signalwall

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/signalwall/analytics"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages and fragments.
type ViewFuncs struct {
	Page        func(p PageData) templ.Component
	Stage       func(p PageData) templ.Component
	Reader      func(r ReaderView) templ.Component
	ReaderBody  func(c ReaderContent) templ.Component
	Sparkles    func(ps []Particle) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the application context: configuration, loaded posts, the
// components built on them, and the render targets.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Posts  *PostStore
	Router *Router
	Reader *Reader
	Mail   MailComposer
	Views  ViewFuncs

	reads         *analytics.Store
	stopCleanup   func()
	stopWatch     func()
	submitLimiter *SubmitLimiter
	source        Source
	screens       []Screen
	customRoutes  []func(*App)
	staticDir     string
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		Mail:      MailComposer{To: cfg.MailTo},
		screens:   DefaultScreens,
		staticDir: "public",
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(log.INFO)
	a.Echo.Server.ReadTimeout = 10 * time.Second
	a.Echo.Server.WriteTimeout = 30 * time.Second
	a.Echo.Server.IdleTimeout = 2 * time.Minute

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init loads the posts and wires middleware and routes without listening.
// A post index that fails to load is logged and leaves the listings empty.
func (a *App) Init(ctx context.Context) error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("signalwall: SessionSecret is required")
	}

	if a.source == nil {
		src, err := NewSource(a.Config.ContentRoot)
		if err != nil {
			return fmt.Errorf("signalwall: content source: %w", err)
		}
		a.source = src
	}

	a.Posts = NewPostStore(a.source, a.Echo.Logger)
	_ = a.Posts.Load(ctx)

	a.Router = NewRouter(a.screens, a.Posts)
	a.Reader = NewReader(a.Posts, a.source, NewContentRenderer())
	a.submitLimiter = NewSubmitLimiter(a.Config.SubmitLimit, a.Config.SubmitWindow)

	if a.Config.AnalyticsEnabled {
		reads, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("signalwall: init analytics: %w", err)
		}
		a.reads = reads
		if err := analytics.InitSalt(reads); err != nil {
			return fmt.Errorf("signalwall: init analytics salt: %w", err)
		}
		a.stopCleanup = reads.StartCleanupScheduler(a.Config.AnalyticsRetentionDays, 24*time.Hour)
	}

	if a.Config.WatchIndex {
		if err := a.watchIndex(ctx); err != nil {
			a.Echo.Logger.Warnf("index watcher disabled: %v", err)
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves until the server fails or is closed.
func (a *App) Start() error {
	if err := a.Init(context.Background()); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run is Start with graceful shutdown when ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}
	errc := make(chan error, 1)
	go func() {
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.Echo.Shutdown(shutdownCtx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Serve the embedded page shell under /public/; everything else there
	// falls through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/router.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/post/:id/", a.handlePostPage)
	e.GET("/post/:id/content/", a.handlePostContent)
	e.GET("/route/", a.handleRoute)
	e.GET("/sparkle/", a.handleSparkle)

	e.POST("/say-it/", a.handleSayIt)
	e.POST("/wire/", a.handleWire)
	e.POST("/reading-mode/", a.handleReadingMode)

	if a.reads != nil {
		analytics.NewHandler(a.reads).RegisterRoutes(e)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopWatch != nil {
		a.stopWatch()
	}
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	if a.submitLimiter != nil {
		a.submitLimiter.Stop()
	}
	if a.reads != nil {
		return a.reads.Close()
	}
	return nil
}
