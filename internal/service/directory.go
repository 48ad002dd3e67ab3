// Package service composes repository calls into the operations the HTTP
// handlers expose: CRUD on venues and artists, show booking, search and
// the past/upcoming aggregation of the detail pages.
package service

import (
    "context"
    "time"

    "github.com/rs/zerolog/log"

    "github.com/iliyamo/venue-booking/internal/model"
    "github.com/iliyamo/venue-booking/internal/queue"
    "github.com/iliyamo/venue-booking/internal/repository"
)

// Directory is the booking directory service.
type Directory struct {
    venues  *repository.VenueRepo
    artists *repository.ArtistRepo
    shows   *repository.ShowRepo
    events  EventPublisher
    now     func() time.Time
}

// Option customizes a Directory.
type Option func(*Directory)

// WithClock replaces time.Now as the source of the evaluation instant that
// splits past from upcoming shows.
func WithClock(now func() time.Time) Option {
    return func(d *Directory) { d.now = now }
}

// WithPublisher sets the publisher for listing events.  The default drops
// them.
func WithPublisher(p EventPublisher) Option {
    return func(d *Directory) { d.events = p }
}

// NewDirectory wires a Directory over the given repositories.
func NewDirectory(venues *repository.VenueRepo, artists *repository.ArtistRepo, shows *repository.ShowRepo, opts ...Option) *Directory {
    d := &Directory{
        venues:  venues,
        artists: artists,
        shows:   shows,
        events:  NopPublisher{},
        now:     time.Now,
    }
    for _, opt := range opts {
        opt(d)
    }
    return d
}

// SearchResult is the payload of a name search.  Count comes from its own
// query and is not len(Data).
type SearchResult[T any] struct {
    Count int64
    Data  []T
}

// VenueDetail is a venue with the shows booked there, split at the
// evaluation instant.
type VenueDetail struct {
    model.Venue
    PastShows          []model.ArtistShow
    UpcomingShows      []model.ArtistShow
    PastShowsCount     int64
    UpcomingShowsCount int64
}

// ArtistDetail is an artist with the venues it is booked at.
type ArtistDetail struct {
    model.Artist
    PastShows          []model.VenueShow
    UpcomingShows      []model.VenueShow
    PastShowsCount     int64
    UpcomingShowsCount int64
}

// ---- venues ----

// CreateVenue stores v and announces it.
func (d *Directory) CreateVenue(ctx context.Context, v *model.Venue) error {
    if err := d.venues.Create(ctx, v); err != nil {
        return err
    }
    d.publish(ctx, queue.VenueListedQueue, queue.VenueListedEvent{
        VenueID:  v.ID,
        Name:     v.Name,
        City:     v.City,
        State:    v.State,
        Genres:   v.Genres,
        ListedAt: d.now().UTC().Format(time.RFC3339),
    })
    return nil
}

// Venue returns a single venue, e.g. to prefill its edit form.
func (d *Directory) Venue(ctx context.Context, id uint64) (*model.Venue, error) {
    return d.venues.GetByID(ctx, id)
}

// UpdateVenue replaces every field of the venue identified by v.ID.
func (d *Directory) UpdateVenue(ctx context.Context, v *model.Venue) error {
    return d.venues.Update(ctx, v)
}

// DeleteVenue removes a venue and its shows.
func (d *Directory) DeleteVenue(ctx context.Context, id uint64) error {
    return d.venues.Delete(ctx, id)
}

// VenueAreas lists venues grouped by city and state.
func (d *Directory) VenueAreas(ctx context.Context) ([]model.VenueArea, error) {
    return d.venues.ListAreas(ctx, d.now())
}

// SearchVenues matches venues whose name contains term.
func (d *Directory) SearchVenues(ctx context.Context, term string) (SearchResult[model.VenueSummary], error) {
    data, n, err := d.venues.SearchByName(ctx, term, d.now())
    if err != nil {
        return SearchResult[model.VenueSummary]{}, err
    }
    return SearchResult[model.VenueSummary]{Count: n, Data: data}, nil
}

// VenueDetail loads a venue with its past and upcoming shows.  Lists and
// counts are separate queries sharing one instant.
func (d *Directory) VenueDetail(ctx context.Context, id uint64) (*VenueDetail, error) {
    v, err := d.venues.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    now := d.now()
    out := &VenueDetail{Venue: *v}
    if out.PastShows, err = d.shows.VenuePastShows(ctx, id, now); err != nil {
        return nil, err
    }
    if out.UpcomingShows, err = d.shows.VenueUpcomingShows(ctx, id, now); err != nil {
        return nil, err
    }
    if out.PastShowsCount, err = d.shows.VenuePastShowsCount(ctx, id, now); err != nil {
        return nil, err
    }
    if out.UpcomingShowsCount, err = d.shows.VenueUpcomingShowsCount(ctx, id, now); err != nil {
        return nil, err
    }
    return out, nil
}

// ---- artists ----

// CreateArtist stores a and announces it.
func (d *Directory) CreateArtist(ctx context.Context, a *model.Artist) error {
    if err := d.artists.Create(ctx, a); err != nil {
        return err
    }
    d.publish(ctx, queue.ArtistListedQueue, queue.ArtistListedEvent{
        ArtistID:     a.ID,
        Name:         a.Name,
        City:         a.City,
        State:        a.State,
        Genres:       a.Genres,
        SeekingVenue: a.SeekingVenue,
        ListedAt:     d.now().UTC().Format(time.RFC3339),
    })
    return nil
}

func (d *Directory) Artist(ctx context.Context, id uint64) (*model.Artist, error) {
    return d.artists.GetByID(ctx, id)
}

func (d *Directory) UpdateArtist(ctx context.Context, a *model.Artist) error {
    return d.artists.Update(ctx, a)
}

func (d *Directory) DeleteArtist(ctx context.Context, id uint64) error {
    return d.artists.Delete(ctx, id)
}

func (d *Directory) Artists(ctx context.Context) ([]model.ArtistSummary, error) {
    return d.artists.ListAll(ctx)
}

func (d *Directory) SearchArtists(ctx context.Context, term string) (SearchResult[model.ArtistSummary], error) {
    data, n, err := d.artists.SearchByName(ctx, term, d.now())
    if err != nil {
        return SearchResult[model.ArtistSummary]{}, err
    }
    return SearchResult[model.ArtistSummary]{Count: n, Data: data}, nil
}

// ArtistDetail mirrors VenueDetail.
func (d *Directory) ArtistDetail(ctx context.Context, id uint64) (*ArtistDetail, error) {
    a, err := d.artists.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    now := d.now()
    out := &ArtistDetail{Artist: *a}
    if out.PastShows, err = d.shows.ArtistPastShows(ctx, id, now); err != nil {
        return nil, err
    }
    if out.UpcomingShows, err = d.shows.ArtistUpcomingShows(ctx, id, now); err != nil {
        return nil, err
    }
    if out.PastShowsCount, err = d.shows.ArtistPastShowsCount(ctx, id, now); err != nil {
        return nil, err
    }
    if out.UpcomingShowsCount, err = d.shows.ArtistUpcomingShowsCount(ctx, id, now); err != nil {
        return nil, err
    }
    return out, nil
}

// ---- shows ----

func (d *Directory) Shows(ctx context.Context) ([]model.ShowListing, error) {
    return d.shows.ListAll(ctx)
}

// CreateShow books s.  A missing venue or artist yields an error matching
// apperror.ErrReferential.
func (d *Directory) CreateShow(ctx context.Context, s *model.Show) error {
    if err := d.shows.Create(ctx, s); err != nil {
        return err
    }
    now := d.now()
    ev := queue.ShowListedEvent{
        VenueID:   s.VenueID,
        ArtistID:  s.ArtistID,
        StartTime: s.StartTime.Format(time.RFC3339),
        Past:      s.IsPast(now),
        ListedAt:  now.UTC().Format(time.RFC3339),
    }
    // names are best effort; the show is already stored
    if v, err := d.venues.GetByID(ctx, s.VenueID); err == nil {
        ev.VenueName = v.Name
    }
    if a, err := d.artists.GetByID(ctx, s.ArtistID); err == nil {
        ev.ArtistName = a.Name
    }
    d.publish(ctx, queue.ShowListedQueue, ev)
    return nil
}

// Now returns the service clock, used to prefill the show form.
func (d *Directory) Now() time.Time { return d.now() }

func (d *Directory) publish(ctx context.Context, q string, event any) {
    if err := d.events.Publish(ctx, q, event); err != nil {
        log.Ctx(ctx).Warn().Err(err).Str("queue", q).Msg("event not published")
    }
}
