package inkpress

import (
	"net/http"
	"time"
)

// Config holds all configuration for an inkpress authoring client.
type Config struct {
	Name       string // Site name shown in views (default "Inkpress")
	BackendURL string // Base URL of the post collection API (default "http://localhost:3001")

	Addr         string // Listen address (default ":3000")
	AccountsPath string // SQLite path for registered accounts (default "data/accounts.db")

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	PageSize int           // Analytics table page size (default 4)
	CacheTTL time.Duration // Collection snapshot TTL (default 1min)
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "Inkpress"
	}
	if c.BackendURL == "" {
		c.BackendURL = "http://localhost:3001"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.AccountsPath == "" {
		c.AccountsPath = "data/accounts.db"
	}
	if c.PageSize == 0 {
		c.PageSize = 4
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
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

// WithHTTPClient sets the http.Client used for backend calls. Timeouts are
// the transport's concern, so this is where they are configured.
func WithHTTPClient(client *http.Client) Option {
	return func(a *App) {
		a.httpClient = client
	}
}
