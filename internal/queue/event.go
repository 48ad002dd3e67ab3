// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names, used as routing keys on the default exchange.
const (
    VenueListedQueue  = "venue.listed"
    ArtistListedQueue = "artist.listed"
    ShowListedQueue   = "show.listed"
)

// VenueListedEvent is published after a venue has been stored.  It carries
// enough for downstream consumers (newsletters, search indexers) to act
// without querying the primary database.
type VenueListedEvent struct {
    VenueID  uint64   `json:"venue_id"`
    Name     string   `json:"name"`
    City     string   `json:"city"`
    State    string   `json:"state"`
    Genres   []string `json:"genres"`
    ListedAt string   `json:"listed_at"`
}

// ArtistListedEvent is published after an artist has been stored.
type ArtistListedEvent struct {
    ArtistID     uint64   `json:"artist_id"`
    Name         string   `json:"name"`
    City         string   `json:"city"`
    State        string   `json:"state"`
    Genres       []string `json:"genres"`
    SeekingVenue bool     `json:"seeking_venue"`
    ListedAt     string   `json:"listed_at"`
}

// ShowListedEvent is published after a show has been booked.
type ShowListedEvent struct {
    VenueID    uint64 `json:"venue_id"`
    VenueName  string `json:"venue_name"`
    ArtistID   uint64 `json:"artist_id"`
    ArtistName string `json:"artist_name"`
    StartTime  string `json:"start_time"`
    Past       bool   `json:"past"` // booked retroactively
    ListedAt   string `json:"listed_at"`
}
