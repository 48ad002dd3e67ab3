package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/form"
    "github.com/iliyamo/venue-booking/internal/view"
)

// ShowFormData is the payload of the show form page.
type ShowFormData struct {
    Form form.ShowForm
}

// ListShows handles GET /shows.
func (h *Handler) ListShows(c echo.Context) error {
    shows, err := h.Dir.Shows(c.Request().Context())
    if err != nil {
        return err
    }
    return render(c, http.StatusOK, "pages/shows", "Shows", nil, shows)
}

// CreateShowForm handles GET /shows/create.  start_time defaults to now.
func (h *Handler) CreateShowForm(c echo.Context) error {
    return render(c, http.StatusOK, "forms/new_show", "New Show", nil, ShowFormData{Form: form.NewShowForm(h.Dir.Now())})
}

// CreateShow handles POST /shows/create.
func (h *Handler) CreateShow(c echo.Context) error {
    var f form.ShowForm
    if err := c.Bind(&f); err != nil {
        return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
    }
    s, err := f.Show()
    if fields, ok := fieldErrors(err); ok {
        flash := view.ValidationFlash("", "", view.Listed, fields)
        return render(c, http.StatusUnprocessableEntity, "forms/new_show", "New Show", flash, ShowFormData{Form: f})
    }
    if err := h.Dir.CreateShow(c.Request().Context(), s); err != nil {
        if errors.Is(err, apperror.ErrReferential) {
            return home(c, view.ReferentialFlash(apperror.Detail(err)))
        }
        return storeFailed(c, err, view.PersistenceFlash("", "", view.Listed))
    }
    return home(c, view.ShowListedFlash())
}
