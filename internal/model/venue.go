package model

// Venue represents a physical location that can host performances.
// This struct corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier, immutable once assigned.
//  Name               – display name of the venue.
//  City, State        – location; together they form the listing area.
//  Address, Phone     – contact details.
//  ImageLink          – URL of a picture shown on the detail page.
//  FacebookLink       – URL of the venue's facebook page.
//  Website            – URL of the venue's own site.
//  Genres             – ordered list of genres the venue books.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
    ID                 uint64   `json:"id"`                  // venues.id
    Name               string   `json:"name"`                // venues.name
    City               string   `json:"city"`                // venues.city
    State              string   `json:"state"`               // venues.state
    Address            string   `json:"address"`             // venues.address
    Phone              string   `json:"phone"`               // venues.phone
    ImageLink          string   `json:"image_link"`          // venues.image_link
    FacebookLink       string   `json:"facebook_link"`       // venues.facebook_link
    Website            string   `json:"website"`             // venues.website
    Genres             []string `json:"genres"`              // venues.genres (JSON array)
    SeekingTalent      bool     `json:"seeking_talent"`      // venues.seeking_talent
    SeekingDescription string   `json:"seeking_description"` // venues.seeking_description
}

// VenueSummary is the short form of a venue used in listings and search
// results, together with its number of upcoming shows.
type VenueSummary struct {
    ID               uint64 `json:"id"`
    Name             string `json:"name"`
    NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// VenueArea groups the venues located in the same (City, State) pair.
type VenueArea struct {
    City   string         `json:"city"`
    State  string         `json:"state"`
    Venues []VenueSummary `json:"venues"`
}
