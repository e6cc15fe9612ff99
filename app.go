// Package inkpress is a content-authoring client for a REST blog backend,
// built with Go, Echo, and templ. It provides the draft → validate →
// normalize-image → persist pipeline, a repository client for the backend
// collection, account/session handling, and aggregate views over the post
// collection.
//
// Users provide their own templ templates via the ViewFuncs struct, and
// inkpress handles the handler logic, middleware, and backend traffic.
package inkpress

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/inkpress/inkpress/stats"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Login       func(form Credentials, errs FieldErrors, failed bool, csrfToken string) templ.Component
	Register    func(form Registration, errs FieldErrors, csrfToken string) templ.Component
	Dashboard   func(posts []Post, user string, msg string, csrfToken string) templ.Component
	PostDetails func(post Post, user string) templ.Component
	Editor      func(draft Draft, editID string, errs FieldErrors, ret ReturnTo, msg string, csrfToken string) templ.Component
	Analytics   func(chart []stats.ChartPoint, page []Post, pageNum, pageCount int, user string, csrfToken string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central inkpress application. It wires together the account
// store, repository client, cache, handlers, middleware, and user-provided
// templates.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Accounts *AccountStore
	Posts    *Client
	Cache    *PostCache
	Views    ViewFuncs

	loginLimiter *LoginLimiter
	httpClient   *http.Client
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new inkpress App with the given configuration and view functions.
func New(cfg Config, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the account store, repository client, cache, middleware,
// and routes, then starts the server.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("inkpress: SessionSecret is required")
	}

	accounts, err := NewAccountStore(a.Config.AccountsPath)
	if err != nil {
		return fmt.Errorf("inkpress: init accounts: %w", err)
	}
	a.Accounts = accounts

	a.Posts = NewClient(a.Config.BackendURL, a.httpClient)
	a.Cache = NewPostCache(a.Posts, a.Config.CacheTTL)
	a.loginLimiter = NewLoginLimiter(maxLoginAttempts, loginWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)

	e.GET("/", a.handleRoot)
	e.GET("/login/", a.handleLoginPage)
	e.POST("/login/", a.handleLogin)
	e.POST("/logout/", a.handleLogout)
	e.GET("/register/", a.handleRegisterPage)
	e.POST("/register/", a.handleRegister)

	e.GET("/dashboard/", a.handleDashboard)
	e.GET("/posts/:id/", a.handlePostDetails)
	e.DELETE("/posts/:id/", a.handlePostDelete)

	e.GET("/editor/", a.handleEditorNew)
	e.GET("/editor/:id/", a.handleEditorLoad)
	e.POST("/editor/", a.handleEditorSubmit)
	e.POST("/editor/:id/", a.handleEditorSubmit)

	e.GET("/analytics/", a.handleAnalytics)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Accounts != nil {
		return a.Accounts.Close()
	}
	return nil
}
