package service

import (
    "context"
    "errors"
    "path/filepath"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/database"
    "github.com/iliyamo/venue-booking/internal/model"
    "github.com/iliyamo/venue-booking/internal/queue"
    "github.com/iliyamo/venue-booking/internal/repository"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type published struct {
    queue string
    event any
}

type recordingPublisher struct {
    mu   sync.Mutex
    sent []published
    err  error
}

func (p *recordingPublisher) Publish(_ context.Context, q string, event any) error {
    p.mu.Lock()
    defer p.mu.Unlock()
    p.sent = append(p.sent, published{q, event})
    return p.err
}

func newTestDirectory(t *testing.T, pub EventPublisher) *Directory {
    t.Helper()
    db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
    require.NoError(t, err)
    t.Cleanup(func() { db.Close() })
    return NewDirectory(
        repository.NewVenueRepo(db),
        repository.NewArtistRepo(db),
        repository.NewShowRepo(db),
        WithClock(func() time.Time { return fixedNow }),
        WithPublisher(pub),
    )
}

func TestCreateVenuePublishesEvent(t *testing.T) {
    pub := &recordingPublisher{}
    d := newTestDirectory(t, pub)

    v := &model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}
    require.NoError(t, d.CreateVenue(context.Background(), v))

    require.Len(t, pub.sent, 1)
    assert.Equal(t, queue.VenueListedQueue, pub.sent[0].queue)
    assert.Equal(t, queue.VenueListedEvent{
        VenueID:  v.ID,
        Name:     "The Musical Hop",
        City:     "San Francisco",
        State:    "CA",
        Genres:   []string{"Jazz"},
        ListedAt: "2026-10-19T12:00:00Z",
    }, pub.sent[0].event)
}

func TestPublishFailureDoesNotFailCreate(t *testing.T) {
    pub := &recordingPublisher{err: errors.New("broker down")}
    d := newTestDirectory(t, pub)
    ctx := context.Background()

    a := &model.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"}
    require.NoError(t, d.CreateArtist(ctx, a))

    got, err := d.Artist(ctx, a.ID)
    require.NoError(t, err)
    assert.Equal(t, "Guns N Petals", got.Name)
}

func TestCreateShowReferentialFailure(t *testing.T) {
    pub := &recordingPublisher{}
    d := newTestDirectory(t, pub)
    ctx := context.Background()

    v := &model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"}
    require.NoError(t, d.CreateVenue(ctx, v))

    err := d.CreateShow(ctx, &model.Show{VenueID: v.ID, ArtistID: 99, StartTime: fixedNow})
    assert.ErrorIs(t, err, apperror.ErrReferential)

    shows, err := d.Shows(ctx)
    require.NoError(t, err)
    assert.Empty(t, shows)
    assert.Len(t, pub.sent, 1, "only the venue was announced")
}

func TestVenueAndArtistDetail(t *testing.T) {
    pub := &recordingPublisher{}
    d := newTestDirectory(t, pub)
    ctx := context.Background()

    v := &model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"}
    require.NoError(t, d.CreateVenue(ctx, v))
    a := &model.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"}
    require.NoError(t, d.CreateArtist(ctx, a))

    past := fixedNow.Add(-24 * time.Hour)
    next := fixedNow.Add(24 * time.Hour)
    require.NoError(t, d.CreateShow(ctx, &model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: past}))
    require.NoError(t, d.CreateShow(ctx, &model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: next}))

    vd, err := d.VenueDetail(ctx, v.ID)
    require.NoError(t, err)
    assert.Equal(t, "The Musical Hop", vd.Name)
    assert.EqualValues(t, 1, vd.PastShowsCount)
    assert.EqualValues(t, 1, vd.UpcomingShowsCount)
    require.Len(t, vd.PastShows, 1)
    require.Len(t, vd.UpcomingShows, 1)
    assert.Equal(t, past, vd.PastShows[0].StartTime)
    assert.Equal(t, "Guns N Petals", vd.UpcomingShows[0].ArtistName)

    ad, err := d.ArtistDetail(ctx, a.ID)
    require.NoError(t, err)
    assert.EqualValues(t, 1, ad.PastShowsCount)
    assert.EqualValues(t, 1, ad.UpcomingShowsCount)
    require.Len(t, ad.UpcomingShows, 1)
    assert.Equal(t, "The Musical Hop", ad.UpcomingShows[0].VenueName)

    last := pub.sent[len(pub.sent)-1]
    assert.Equal(t, queue.ShowListedQueue, last.queue)
    ev, ok := last.event.(queue.ShowListedEvent)
    require.True(t, ok)
    assert.Equal(t, "The Musical Hop", ev.VenueName)
    assert.Equal(t, "Guns N Petals", ev.ArtistName)
    assert.Equal(t, "2026-10-20T12:00:00Z", ev.StartTime)
    assert.False(t, ev.Past)
}

func TestDetailNotFound(t *testing.T) {
    d := newTestDirectory(t, NopPublisher{})
    _, err := d.VenueDetail(context.Background(), 1)
    assert.ErrorIs(t, err, apperror.ErrNotFound)
    _, err = d.ArtistDetail(context.Background(), 1)
    assert.ErrorIs(t, err, repository.ErrArtistNotFound)
}

func TestSearchCountMatchesTotal(t *testing.T) {
    d := newTestDirectory(t, NopPublisher{})
    ctx := context.Background()
    for _, name := range []string{"The Musical Hop", "The Dueling Pianos Bar", "Park Square Live Music & Coffee"} {
        require.NoError(t, d.CreateVenue(ctx, &model.Venue{Name: name, City: "San Francisco", State: "CA"}))
    }

    res, err := d.SearchVenues(ctx, "")
    require.NoError(t, err)
    assert.EqualValues(t, 3, res.Count)
    assert.Len(t, res.Data, 3)

    res, err = d.SearchVenues(ctx, "music")
    require.NoError(t, err)
    assert.EqualValues(t, 2, res.Count)

    ares, err := d.SearchArtists(ctx, "anything")
    require.NoError(t, err)
    assert.Zero(t, ares.Count)
    assert.Empty(t, ares.Data)
}
