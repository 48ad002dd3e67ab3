// Package middleware holds the echo middleware of the HTTP server: request
// logging with request ids and the Redis backed rate limiter.
package middleware

import (
    "fmt"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog/log"
)

// RequestLogger tags each request with an id (reusing an incoming
// X-Request-ID), stores a child logger in the request context for log.Ctx,
// and logs one line when the request completes.
func RequestLogger() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            req := c.Request()

            id := req.Header.Get(echo.HeaderXRequestID)
            if id == "" {
                id = newRequestID()
            }
            c.Response().Header().Set(echo.HeaderXRequestID, id)

            logger := log.With().Str("request_id", id).Logger()
            c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

            if err := next(c); err != nil {
                // let the error handler write the response so the status is final
                c.Error(err)
            }

            status := c.Response().Status
            ev := logger.Info()
            if status >= 500 {
                ev = logger.Warn()
            }
            ev.Str("method", req.Method).
                Str("path", req.URL.Path).
                Str("route", c.Path()).
                Str("remote_ip", c.RealIP()).
                Int("status", status).
                Int64("bytes_out", c.Response().Size).
                Dur("duration", time.Since(start)).
                Msg("request completed")
            return nil
        }
    }
}

func newRequestID() string {
    u, err := uuid.NewRandom()
    if err == nil {
        return u.String()
    }
    return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
