package model

// Artist represents a performer who can be booked into a show.  This
// struct corresponds to a row in the `artists` table.
type Artist struct {
    ID                 uint64   `json:"id"`                  // artists.id
    Name               string   `json:"name"`                // artists.name
    City               string   `json:"city"`                // artists.city
    State              string   `json:"state"`               // artists.state
    Phone              string   `json:"phone"`               // artists.phone
    Genres             []string `json:"genres"`              // artists.genres (JSON array)
    ImageLink          string   `json:"image_link"`          // artists.image_link
    FacebookLink       string   `json:"facebook_link"`       // artists.facebook_link
    Website            string   `json:"website"`             // artists.website
    SeekingVenue       bool     `json:"seeking_venue"`       // artists.seeking_venue
    SeekingDescription string   `json:"seeking_description"` // artists.seeking_description
}

// ArtistSummary is the short form of an artist used in listings and
// search results.
type ArtistSummary struct {
    ID               uint64 `json:"id"`
    Name             string `json:"name"`
    NumUpcomingShows int64  `json:"num_upcoming_shows"`
}
