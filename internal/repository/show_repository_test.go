package repository

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/model"
)

func TestShowCreateRequiresVenueAndArtist(t *testing.T) {
    db := newTestDB(t)
    venues, artists, shows := NewVenueRepo(db), NewArtistRepo(db), NewShowRepo(db)
    ctx := context.Background()
    v := createTestVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, artists, "Guns N Petals")

    tests := []struct {
        name string
        show model.Show
    }{
        {"missing artist", model.Show{VenueID: v.ID, ArtistID: a.ID + 100, StartTime: testNow}},
        {"missing venue", model.Show{VenueID: v.ID + 100, ArtistID: a.ID, StartTime: testNow}},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            s := tt.show
            err := shows.Create(ctx, &s)
            assert.ErrorIs(t, err, apperror.ErrReferential)
            assert.NotErrorIs(t, err, apperror.ErrPersistence)

            n, err := shows.Count(ctx)
            require.NoError(t, err)
            assert.Zero(t, n)
        })
    }
}

func TestShowCreateDuplicate(t *testing.T) {
    db := newTestDB(t)
    shows := NewShowRepo(db)
    v := createTestVenue(t, NewVenueRepo(db), "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, NewArtistRepo(db), "Guns N Petals")
    createTestShow(t, shows, v.ID, a.ID, testNow)

    err := shows.Create(context.Background(), &model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: testNow})
    assert.ErrorIs(t, err, apperror.ErrPersistence)
}

func TestShowCreateNormalizesStartTime(t *testing.T) {
    db := newTestDB(t)
    shows := NewShowRepo(db)
    v := createTestVenue(t, NewVenueRepo(db), "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, NewArtistRepo(db), "Guns N Petals")

    est := time.FixedZone("EST", -5*3600)
    s := &model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: time.Date(2026, 5, 21, 16, 30, 0, 123456789, est)}
    require.NoError(t, shows.Create(context.Background(), s))
    assert.Equal(t, time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC), s.StartTime)

    all, err := shows.ListAll(context.Background())
    require.NoError(t, err)
    require.Len(t, all, 1)
    assert.Equal(t, s.StartTime, all[0].StartTime)
}

func TestShowListAllOrdering(t *testing.T) {
    db := newTestDB(t)
    venues, artists, shows := NewVenueRepo(db), NewArtistRepo(db), NewShowRepo(db)
    v := createTestVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, artists, "Guns N Petals")
    b := createTestArtist(t, artists, "Matt Quevedo")

    later := testNow.Add(72 * time.Hour)
    createTestShow(t, shows, v.ID, b.ID, later)
    createTestShow(t, shows, v.ID, a.ID, later)
    createTestShow(t, shows, v.ID, b.ID, testNow.Add(-72*time.Hour))

    got, err := shows.ListAll(context.Background())
    require.NoError(t, err)
    require.Len(t, got, 3)
    assert.Equal(t, testNow.Add(-72*time.Hour), got[0].StartTime)
    assert.Equal(t, a.ID, got[1].ArtistID)
    assert.Equal(t, "Guns N Petals", got[1].ArtistName)
    assert.Equal(t, b.ID, got[2].ArtistID)
    assert.Equal(t, "The Musical Hop", got[2].VenueName)
}

func TestShowPastUpcomingSplit(t *testing.T) {
    db := newTestDB(t)
    venues, artists, shows := NewVenueRepo(db), NewArtistRepo(db), NewShowRepo(db)
    ctx := context.Background()

    v := createTestVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, artists, "Guns N Petals")
    other := createTestArtist(t, artists, "Matt Quevedo")

    pastStart := testNow.Add(-48 * time.Hour)
    upcomingStart := testNow.Add(48 * time.Hour)
    createTestShow(t, shows, v.ID, a.ID, pastStart)
    createTestShow(t, shows, v.ID, a.ID, upcomingStart)

    n, err := shows.VenuePastShowsCount(ctx, v.ID, testNow)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n)
    n, err = shows.VenueUpcomingShowsCount(ctx, v.ID, testNow)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n)

    vp, err := shows.VenuePastShows(ctx, v.ID, testNow)
    require.NoError(t, err)
    assert.Equal(t, []model.ArtistShow{{ArtistID: a.ID, ArtistName: "Guns N Petals", StartTime: pastStart}}, vp)
    vu, err := shows.VenueUpcomingShows(ctx, v.ID, testNow)
    require.NoError(t, err)
    assert.Equal(t, []model.ArtistShow{{ArtistID: a.ID, ArtistName: "Guns N Petals", StartTime: upcomingStart}}, vu)

    n, err = shows.ArtistPastShowsCount(ctx, a.ID, testNow)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n)
    n, err = shows.ArtistUpcomingShowsCount(ctx, a.ID, testNow)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n)

    ap, err := shows.ArtistPastShows(ctx, a.ID, testNow)
    require.NoError(t, err)
    assert.Equal(t, []model.VenueShow{{VenueID: v.ID, VenueName: "The Musical Hop", StartTime: pastStart}}, ap)
    au, err := shows.ArtistUpcomingShows(ctx, a.ID, testNow)
    require.NoError(t, err)
    require.Len(t, au, 1)
    assert.Equal(t, upcomingStart, au[0].StartTime)

    // an artist with no bookings
    n, err = shows.ArtistPastShowsCount(ctx, other.ID, testNow)
    require.NoError(t, err)
    assert.Zero(t, n)
    empty, err := shows.ArtistUpcomingShows(ctx, other.ID, testNow)
    require.NoError(t, err)
    assert.Empty(t, empty)
}

func TestShowStartingExactlyNowIsPast(t *testing.T) {
    db := newTestDB(t)
    shows := NewShowRepo(db)
    ctx := context.Background()
    v := createTestVenue(t, NewVenueRepo(db), "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, NewArtistRepo(db), "Guns N Petals")
    createTestShow(t, shows, v.ID, a.ID, testNow)

    past, err := shows.VenuePastShowsCount(ctx, v.ID, testNow)
    require.NoError(t, err)
    upcoming, err := shows.VenueUpcomingShowsCount(ctx, v.ID, testNow)
    require.NoError(t, err)
    assert.EqualValues(t, 1, past)
    assert.Zero(t, upcoming)
}

func TestShowListsOrderedByStartTime(t *testing.T) {
    db := newTestDB(t)
    shows := NewShowRepo(db)
    ctx := context.Background()
    v := createTestVenue(t, NewVenueRepo(db), "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, NewArtistRepo(db), "Guns N Petals")

    starts := []time.Time{testNow.Add(30 * time.Hour), testNow.Add(10 * time.Hour), testNow.Add(20 * time.Hour)}
    for _, s := range starts {
        createTestShow(t, shows, v.ID, a.ID, s)
    }

    got, err := shows.VenueUpcomingShows(ctx, v.ID, testNow)
    require.NoError(t, err)
    require.Len(t, got, 3)
    for i := 1; i < len(got); i++ {
        assert.True(t, got[i-1].StartTime.Before(got[i].StartTime))
    }
}
