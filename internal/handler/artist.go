package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/venue-booking/internal/form"
    "github.com/iliyamo/venue-booking/internal/model"
    "github.com/iliyamo/venue-booking/internal/view"
)

// ListArtists handles GET /artists.
func (h *Handler) ListArtists(c echo.Context) error {
    artists, err := h.Dir.Artists(c.Request().Context())
    if err != nil {
        return err
    }
    return render(c, http.StatusOK, "pages/artists", "Artists", nil, artists)
}

// SearchArtists handles POST /artists/search.
func (h *Handler) SearchArtists(c echo.Context) error {
    term := c.FormValue("search_term")
    res, err := h.Dir.SearchArtists(c.Request().Context(), term)
    if err != nil {
        return err
    }
    data := SearchData[model.ArtistSummary]{Term: term, Count: res.Count, Items: res.Data}
    return render(c, http.StatusOK, "pages/search_artists", "Artists", nil, data)
}

// ShowArtist handles GET /artists/:id.
func (h *Handler) ShowArtist(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return err
    }
    detail, err := h.Dir.ArtistDetail(c.Request().Context(), id)
    if err != nil {
        return err
    }
    return render(c, http.StatusOK, "pages/show_artist", detail.Name, nil, detail)
}

func (h *Handler) CreateArtistForm(c echo.Context) error {
    return render(c, http.StatusOK, "forms/new_artist", "New Artist", nil, newEntityFormData(0, form.ArtistForm{}))
}

// CreateArtist handles POST /artists/create.
func (h *Handler) CreateArtist(c echo.Context) error {
    var f form.ArtistForm
    if err := c.Bind(&f); err != nil {
        return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
    }
    a, err := f.Artist()
    if fields, ok := fieldErrors(err); ok {
        flash := view.ValidationFlash("Artist", f.Name, view.Listed, fields)
        return render(c, http.StatusUnprocessableEntity, "forms/new_artist", "New Artist", flash, newEntityFormData(0, f))
    }
    if err := h.Dir.CreateArtist(c.Request().Context(), a); err != nil {
        return storeFailed(c, err, view.PersistenceFlash("Artist", f.Name, view.Listed))
    }
    return home(c, view.ListedFlash("Artist", a.Name))
}

func (h *Handler) EditArtistForm(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return err
    }
    a, err := h.Dir.Artist(c.Request().Context(), id)
    if err != nil {
        return err
    }
    return render(c, http.StatusOK, "forms/edit_artist", "Edit Artist", nil, newEntityFormData(id, form.ArtistFormFrom(a)))
}

// EditArtist handles POST /artists/:id/edit and updates the artist, never
// a venue sharing the id.
func (h *Handler) EditArtist(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return err
    }
    var f form.ArtistForm
    if err := c.Bind(&f); err != nil {
        return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
    }
    a, err := f.Artist()
    if fields, ok := fieldErrors(err); ok {
        flash := view.ValidationFlash("Artist", f.Name, view.Updated, fields)
        return render(c, http.StatusUnprocessableEntity, "forms/edit_artist", "Edit Artist", flash, newEntityFormData(id, f))
    }
    a.ID = id
    if err := h.Dir.UpdateArtist(c.Request().Context(), a); err != nil {
        if isNotFound(err) {
            return err
        }
        return storeFailed(c, err, view.PersistenceFlash("Artist", f.Name, view.Updated))
    }
    return c.Redirect(http.StatusSeeOther, "/artists/"+strconv.FormatUint(id, 10))
}

// DeleteArtist handles DELETE /artists/:id.
func (h *Handler) DeleteArtist(c echo.Context) error {
    id, err := parseID(c)
    if err != nil {
        return deleted(c, err)
    }
    return deleted(c, h.Dir.DeleteArtist(c.Request().Context(), id))
}
