package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/venue-booking/internal/form"
    "github.com/iliyamo/venue-booking/internal/model"
    "github.com/iliyamo/venue-booking/internal/view"
)

// ListVenues handles GET /venues.
func (h *Handler) ListVenues(c echo.Context) error {
    areas, err := h.Dir.VenueAreas(c.Request().Context())
    if err != nil {
        return err
    }
    return render(c, http.StatusOK, "pages/venues", "Venues", nil, areas)
}

// SearchVenues handles POST /venues/search.
func (h *Handler) SearchVenues(c echo.Context) error {
    term := c.FormValue("search_term")
    res, err := h.Dir.SearchVenues(c.Request().Context(), term)
    if err != nil {
        return err
    }
    data := SearchData[model.VenueSummary]{Term: term, Count: res.Count, Items: res.Data}
    return render(c, http.StatusOK, "pages/search_venues", "Venues", nil, data)
}

// ShowVenue handles GET /venues/:id.
func (h *Handler) ShowVenue(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return err
    }
    detail, err := h.Dir.VenueDetail(c.Request().Context(), id)
    if err != nil {
        return err
    }
    return render(c, http.StatusOK, "pages/show_venue", detail.Name, nil, detail)
}

// CreateVenueForm handles GET /venues/create.
func (h *Handler) CreateVenueForm(c echo.Context) error {
    return render(c, http.StatusOK, "forms/new_venue", "New Venue", nil, newEntityFormData(0, form.VenueForm{}))
}

// CreateVenue handles POST /venues/create.
func (h *Handler) CreateVenue(c echo.Context) error {
    var f form.VenueForm
    if err := c.Bind(&f); err != nil {
        return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
    }
    v, err := f.Venue()
    if fields, ok := fieldErrors(err); ok {
        flash := view.ValidationFlash("Venue", f.Name, view.Listed, fields)
        return render(c, http.StatusUnprocessableEntity, "forms/new_venue", "New Venue", flash, newEntityFormData(0, f))
    }
    if err := h.Dir.CreateVenue(c.Request().Context(), v); err != nil {
        return storeFailed(c, err, view.PersistenceFlash("Venue", f.Name, view.Listed))
    }
    return home(c, view.ListedFlash("Venue", v.Name))
}

// EditVenueForm handles GET /venues/:id/edit, prefilled from the store.
func (h *Handler) EditVenueForm(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return err
    }
    v, err := h.Dir.Venue(c.Request().Context(), id)
    if err != nil {
        return err
    }
    return render(c, http.StatusOK, "forms/edit_venue", "Edit Venue", nil, newEntityFormData(id, form.VenueFormFrom(v)))
}

// EditVenue handles POST /venues/:id/edit.  The submitted form replaces
// every field of the venue.
func (h *Handler) EditVenue(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return err
    }
    var f form.VenueForm
    if err := c.Bind(&f); err != nil {
        return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
    }
    v, err := f.Venue()
    if fields, ok := fieldErrors(err); ok {
        flash := view.ValidationFlash("Venue", f.Name, view.Updated, fields)
        return render(c, http.StatusUnprocessableEntity, "forms/edit_venue", "Edit Venue", flash, newEntityFormData(id, f))
    }
    v.ID = id
    if err := h.Dir.UpdateVenue(c.Request().Context(), v); err != nil {
        if isNotFound(err) {
            return err
        }
        return storeFailed(c, err, view.PersistenceFlash("Venue", f.Name, view.Updated))
    }
    return c.Redirect(http.StatusSeeOther, "/venues/"+strconv.FormatUint(id, 10))
}

// DeleteVenue handles DELETE /venues/:id.
func (h *Handler) DeleteVenue(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return deleted(c, err)
    }
    return deleted(c, h.Dir.DeleteVenue(c.Request().Context(), id))
}
