package inkpress

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/inkpress/stats"
)

func (a *App) handleEditorNew(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login/")
	}
	// A fresh draft starts with the session's display name as author.
	draft := Draft{Author: user, Source: SourceURL}
	ret := ParseReturnTo(c.QueryParam("from"))
	return Render(c, a.Views.Editor(draft, "", FieldErrors{}, ret, "", CsrfToken(c)))
}

func (a *App) handleEditorLoad(c echo.Context) error {
	if _, ok := CurrentUser(c); !ok {
		return c.Redirect(http.StatusSeeOther, "/login/")
	}
	id := c.Param("id")
	ret := ParseReturnTo(c.QueryParam("from"))
	post, err := a.Posts.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// The record is gone — send the user somewhere safe instead
			// of an editor over nothing.
			return c.Redirect(http.StatusSeeOther, ret.Path())
		}
		return err
	}
	return Render(c, a.Views.Editor(DraftFromPost(post), id, FieldErrors{}, ret, "", CsrfToken(c)))
}

// handleEditorSubmit runs the authoring pipeline for both create and edit:
// bind the draft, validate, normalize the image, persist, then send the
// user back to where they came from. The steps are strictly sequenced —
// normalization never starts on an invalid draft, and no repository call is
// issued before the image is resolved.
func (a *App) handleEditorSubmit(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login/")
	}
	editID := c.Param("id")
	ret := ParseReturnTo(c.FormValue("from"))

	draft := Draft{
		Title:       c.FormValue("title"),
		Author:      c.FormValue("author"),
		Description: c.FormValue("description"),
		ImageURL:    c.FormValue("imageUrl"),
		ImageData:   c.FormValue("imageData"),
		Source:      ImageSource(c.FormValue("imageType")),
	}
	if draft.Source != SourceFile {
		draft.Source = SourceURL
	}

	if errs := ValidateDraft(draft); !errs.Valid() {
		return Render(c, a.Views.Editor(draft, editID, errs, ret, "", CsrfToken(c)))
	}

	image, errs := a.resolveImage(c, &draft)
	if !errs.Valid() {
		return Render(c, a.Views.Editor(draft, editID, errs, ret, "", CsrfToken(c)))
	}

	ctx := c.Request().Context()
	var err error
	if editID == "" {
		_, err = a.Posts.Create(ctx, NewRecord(draft, image, user))
	} else {
		var existing Post
		existing, err = a.Posts.Get(ctx, editID)
		if err == nil {
			_, err = a.Posts.Update(ctx, editID, UpdateRecord(existing, draft, image, user))
		}
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Redirect(http.StatusSeeOther, ret.Path())
		}
		if msg, ok := IsRejected(err); ok {
			return Render(c, a.Views.Editor(draft, editID, FieldErrors{}, ret, msg, CsrfToken(c)))
		}
		if IsTransport(err) {
			return Render(c, a.Views.Editor(draft, editID, FieldErrors{}, ret, "Could not reach the backend. Try again.", CsrfToken(c)))
		}
		return err
	}

	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, ret.Path()+"?msg=saved")
}

// resolveImage turns the draft's image input into its stored encoding. A
// newly uploaded file replaces the previous preview; a file-tab submit with
// no new upload keeps the previous preview and recompresses it.
func (a *App) resolveImage(c echo.Context, draft *Draft) (string, FieldErrors) {
	if draft.Source == SourceURL {
		image, err := NormalizeImage(SourceURL, draft.ImageURL)
		if err != nil {
			return "", FieldErrors{"image": CodeInvalidImage}
		}
		return image, FieldErrors{}
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if file.Size > maxUploadSize {
			return "", FieldErrors{"image": CodeInvalidImage}
		}
		src, err := file.Open()
		if err != nil {
			return "", FieldErrors{"image": CodeInvalidImage}
		}
		defer src.Close()
		image, err := NormalizeUpload(src, file.Header.Get("Content-Type"))
		if err != nil {
			return "", FieldErrors{"image": CodeInvalidImage}
		}
		draft.ImageData = image
		return image, FieldErrors{}
	}

	image, err := NormalizeImage(SourceFile, draft.ImageData)
	if err != nil {
		return "", FieldErrors{"image": CodeInvalidImage}
	}
	return image, FieldErrors{}
}

func (a *App) handlePostDelete(c echo.Context) error {
	if _, ok := CurrentUser(c); !ok {
		return c.Redirect(http.StatusSeeOther, "/login/")
	}
	if err := a.Posts.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	ret := ParseReturnTo(c.QueryParam("from"))
	return c.Redirect(http.StatusSeeOther, ret.Path()+"?msg=deleted")
}

func (a *App) handleAnalytics(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login/")
	}
	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		return err
	}

	chart := stats.ChartData(stats.CountsByAuthor(posts))
	pageCount := stats.PageCount(len(posts), a.Config.PageSize)

	// The engine returns an empty slice for out-of-range pages; the view's
	// prev/next controls are disabled at the boundaries, so clamp here.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}
	rows := stats.Paginate(posts, a.Config.PageSize, page)

	return Render(c, a.Views.Analytics(chart, rows, page, pageCount, user, CsrfToken(c)))
}
