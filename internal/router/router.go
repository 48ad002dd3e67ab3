package router // package router defines how HTTP routes are registered

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/venue-booking/internal/handler" // page handlers
)

// RegisterRoutes maps every page of the directory onto e.  limit guards the
// routes that write (creates, edits, deletes); nil means no limit.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, limit echo.MiddlewareFunc) {
    if limit == nil {
        limit = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }

    // Load balancers and monitoring probe this without touching the database.
    e.GET("/healthz", handler.Health)
    e.GET("/", h.Home)

    venues := e.Group("/venues")
    venues.GET("", h.ListVenues)
    venues.POST("/search", h.SearchVenues)
    venues.GET("/create", h.CreateVenueForm)
    venues.POST("/create", h.CreateVenue, limit)
    venues.GET("/:id", h.ShowVenue)
    venues.DELETE("/:id", h.DeleteVenue, limit)
    venues.GET("/:id/edit", h.EditVenueForm)
    venues.POST("/:id/edit", h.EditVenue, limit)

    artists := e.Group("/artists")
    artists.GET("", h.ListArtists)
    artists.POST("/search", h.SearchArtists)
    artists.GET("/create", h.CreateArtistForm)
    artists.POST("/create", h.CreateArtist, limit)
    artists.GET("/:id", h.ShowArtist)
    artists.DELETE("/:id", h.DeleteArtist, limit)
    artists.GET("/:id/edit", h.EditArtistForm)
    artists.POST("/:id/edit", h.EditArtist, limit)

    shows := e.Group("/shows")
    shows.GET("", h.ListShows)
    shows.GET("/create", h.CreateShowForm)
    shows.POST("/create", h.CreateShow, limit)
}
