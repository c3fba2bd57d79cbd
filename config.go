package signalwall

import "time"

// SiteConfig holds all configuration for a signalwall site.
type SiteConfig struct {
	Name        string // Site name (default "Signal Wall")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr        string // Listen address (default ":3000")
	ContentRoot string // Directory or http(s) URL holding posts/ (default "content")
	MailTo      string // Recipient of both forms (default "hello@example.com")

	SessionSecret string // Required: reader session signing secret
	CookieSecure  bool   // Set true for HTTPS

	AnalyticsEnabled       bool   // Count post reads
	AnalyticsDatabasePath  string // Read counter SQLite path (default "data/reads.db")
	AnalyticsRetentionDays int    // Days of reads kept (default 365)

	SubmitLimit  int           // Form submissions per IP and window (default 10)
	SubmitWindow time.Duration // default 1min

	WatchIndex bool // Reload posts.json when it changes on disk
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Signal Wall"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentRoot == "" {
		c.ContentRoot = "content"
	}
	if c.MailTo == "" {
		c.MailTo = "hello@example.com"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/reads.db"
	}
	if c.AnalyticsRetentionDays <= 0 {
		c.AnalyticsRetentionDays = 365
	}
	if c.SubmitLimit <= 0 {
		c.SubmitLimit = 10
	}
	if c.SubmitWindow <= 0 {
		c.SubmitWindow = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource overrides the content source derived from ContentRoot.
func WithSource(src Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithScreens replaces DefaultScreens.
func WithScreens(screens []Screen) Option {
	return func(a *App) {
		a.screens = screens
	}
}
