package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/venue-booking/internal/apperror"
)

func isNotFound(err error) bool {
    if errors.Is(err, apperror.ErrNotFound) {
        return true
    }
    var he *echo.HTTPError
    return errors.As(err, &he) && he.Code == http.StatusNotFound
}

// HTTPErrorHandler is the echo error handler.  Missing routes and entities
// get the 404 page, other client errors a plain status line, and anything
// else is logged at error level and gets the 500 page.
func HTTPErrorHandler(err error, c echo.Context) {
    if c.Response().Committed {
        log.Ctx(c.Request().Context()).Error().Err(err).Msg("error after response was written")
        return
    }

    var he *echo.HTTPError
    switch {
    case isNotFound(err):
        renderError(c, http.StatusNotFound, "errors/404", "Not Found")
        return
    case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
        msg := http.StatusText(he.Code)
        if s, ok := he.Message.(string); ok {
            msg = s
        }
        if c.Request().Method == http.MethodHead {
            _ = c.NoContent(he.Code)
            return
        }
        _ = c.String(he.Code, msg)
        return
    }

    log.Ctx(c.Request().Context()).Error().Err(err).
        Str("method", c.Request().Method).
        Str("path", c.Request().URL.Path).
        Msg("unhandled error")
    renderError(c, http.StatusInternalServerError, "errors/500", "Server Error")
}

func renderError(c echo.Context, status int, page, title string) {
    if err := render(c, status, page, title, nil, nil); err != nil {
        log.Ctx(c.Request().Context()).Error().Err(err).Str("page", page).Msg("render error page")
        _ = c.String(status, http.StatusText(status))
    }
}
