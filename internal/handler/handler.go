// Package handler contains the HTTP handlers of the booking directory.
// Handlers bind and validate input, call the directory service and render
// a page; they hold no business logic of their own.
package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/form"
    "github.com/iliyamo/venue-booking/internal/service"
    "github.com/iliyamo/venue-booking/internal/view"
)

// Handler bundles the directory service for the page handlers.
type Handler struct {
    Dir *service.Directory
}

// New constructs a Handler and panics if dir is nil.
func New(dir *service.Directory) *Handler {
    if dir == nil {
        panic("nil directory passed to handler.New")
    }
    return &Handler{Dir: dir}
}

// parseID reads the :id path parameter.  Anything but a positive integer
// the store can hold (at most math.MaxInt64) is a missing page.
func parseID(c echo.Context) (uint64, error) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil || id <= 0 {
        return 0, echo.ErrNotFound
    }
    return uint64(id), nil
}

func render(c echo.Context, status int, name, title string, flash *view.Flash, data any) error {
    return c.Render(status, name, view.Page{Title: title, Flash: flash, Data: data})
}

// Home handles GET /.
func (h *Handler) Home(c echo.Context) error {
    return render(c, http.StatusOK, "pages/home", "Home", nil, nil)
}

// home renders the landing page with flash; used as the outcome of every
// create and of failed writes.
func home(c echo.Context, flash *view.Flash) error {
    return render(c, http.StatusOK, "pages/home", "Home", flash, nil)
}

// fieldErrors extracts the per-field messages of a validation failure.
func fieldErrors(err error) (map[string][]string, bool) {
    var verr *apperror.ValidationError
    if errors.As(err, &verr) {
        return verr.Fields, true
    }
    return nil, false
}

// storeFailed logs a write failure and renders the generic notice.
func storeFailed(c echo.Context, err error, flash *view.Flash) error {
    log.Ctx(c.Request().Context()).Error().Err(err).Str("path", c.Request().URL.Path).Msg("write failed")
    return home(c, flash)
}

// deleted answers a DELETE with {"success": bool}; the page script decides
// where to go next.
func deleted(c echo.Context, err error) error {
    if err != nil {
        ev := log.Ctx(c.Request().Context()).Error()
        if isNotFound(err) {
            ev = log.Ctx(c.Request().Context()).Info()
        }
        ev.Err(err).Str("path", c.Request().URL.Path).Msg("delete failed")
        return c.JSON(http.StatusOK, echo.Map{"success": false})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// SearchData is the payload of the search result pages.
type SearchData[T any] struct {
    Term  string
    Count int64
    Items []T
}

// EntityFormData is the payload of the venue and artist form pages.  ID is
// zero on create pages.
type EntityFormData[F any] struct {
    ID     uint64
    Form   F
    Genres []string
    States []string
}

func newEntityFormData[F any](id uint64, f F) EntityFormData[F] {
    return EntityFormData[F]{ID: id, Form: f, Genres: form.Genres, States: form.States}
}
