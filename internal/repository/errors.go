package repository

// Missing rows are reported with apperror.NotFound wrapping one of these
// sentinels, so the returned error matches both the sentinel and
// apperror.ErrNotFound.

import "errors"

// ErrVenueNotFound is returned when a venue id matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id matches no row.
var ErrArtistNotFound = errors.New("artist not found")
