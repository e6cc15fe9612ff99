package inkpress

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleRoot(c echo.Context) error {
	if _, ok := CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/dashboard/")
	}
	return c.Redirect(http.StatusSeeOther, "/login/")
}

func (a *App) handleLoginPage(c echo.Context) error {
	if _, ok := CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/dashboard/")
	}
	return Render(c, a.Views.Login(Credentials{}, FieldErrors{}, false, CsrfToken(c)))
}

func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	form := Credentials{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}
	if errs := ValidateCredentials(form); !errs.Valid() {
		return Render(c, a.Views.Login(form, errs, false, CsrfToken(c)))
	}
	account, err := a.Accounts.Authenticate(form.Email, form.Password)
	if err != nil {
		if err == ErrInvalidLogin {
			a.loginLimiter.Record(c.RealIP())
			return Render(c, a.Views.Login(form, FieldErrors{}, true, CsrfToken(c)))
		}
		return err
	}
	if err := setUserSession(c, account); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard/")
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearUserSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login/")
}

func (a *App) handleRegisterPage(c echo.Context) error {
	return Render(c, a.Views.Register(Registration{}, FieldErrors{}, CsrfToken(c)))
}

func (a *App) handleRegister(c echo.Context) error {
	form := Registration{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
		Confirm:  c.FormValue("confirm"),
	}
	if errs := ValidateRegistration(form); !errs.Valid() {
		return Render(c, a.Views.Register(form, errs, CsrfToken(c)))
	}
	err := a.Accounts.Register(Account{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if err == ErrDuplicateEmail {
			return Render(c, a.Views.Register(form, FieldErrors{"email": CodeInvalid}, CsrfToken(c)))
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login/")
}

func (a *App) handleDashboard(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login/")
	}
	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Dashboard(posts, user, c.QueryParam("msg"), CsrfToken(c)))
}

func (a *App) handlePostDetails(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login/")
	}
	post, err := a.Cache.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.PostDetails(post, user))
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
