package model

import "time"

// Show is a scheduled appearance of one artist at one venue.  It has no
// identifier of its own: the triple (VenueID, ArtistID, StartTime) is the
// primary key of the `shows` table.  StartTime is stored in UTC with
// second precision.
type Show struct {
    VenueID   uint64    `json:"venue_id"`   // shows.venue_id
    ArtistID  uint64    `json:"artist_id"`  // shows.artist_id
    StartTime time.Time `json:"start_time"` // shows.start_time
}

// IsPast reports whether the show started at or before now.  Shows are
// classified at read time and the classification is never stored.
func (s Show) IsPast(now time.Time) bool {
    return !s.StartTime.After(now)
}

// ShowListing is a show joined with the display fields of its venue and
// artist, as rendered on the shows page.
type ShowListing struct {
    VenueID         uint64    `json:"venue_id"`
    VenueName       string    `json:"venue_name"`
    VenueImageLink  string    `json:"venue_image_link"`
    ArtistID        uint64    `json:"artist_id"`
    ArtistName      string    `json:"artist_name"`
    ArtistImageLink string    `json:"artist_image_link"`
    StartTime       time.Time `json:"start_time"`
}

// ArtistShow is a show seen from a venue: the performing artist and the
// start time.
type ArtistShow struct {
    ArtistID        uint64    `json:"artist_id"`
    ArtistName      string    `json:"artist_name"`
    ArtistImageLink string    `json:"artist_image_link"`
    StartTime       time.Time `json:"start_time"`
}

// VenueShow is a show seen from an artist: the hosting venue and the
// start time.
type VenueShow struct {
    VenueID        uint64    `json:"venue_id"`
    VenueName      string    `json:"venue_name"`
    VenueImageLink string    `json:"venue_image_link"`
    StartTime      time.Time `json:"start_time"`
}
