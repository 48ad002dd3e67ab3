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

func TestArtistCreateGetRoundTrip(t *testing.T) {
    repo := NewArtistRepo(newTestDB(t))
    ctx := context.Background()

    in := &model.Artist{
        Name:               "Guns N Petals",
        City:               "San Francisco",
        State:              "CA",
        Phone:              "326-123-5000",
        Genres:             []string{"Rock n Roll", "R&B"},
        ImageLink:          "https://images.example.com/gnp.jpg",
        FacebookLink:       "https://www.facebook.com/GunsNPetals",
        Website:            "https://www.gunsnpetalsband.com",
        SeekingVenue:       true,
        SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
    }
    require.NoError(t, repo.Create(ctx, in))
    require.NotZero(t, in.ID)

    got, err := repo.GetByID(ctx, in.ID)
    require.NoError(t, err)
    assert.Equal(t, in, got)
}

func TestArtistGetNotFound(t *testing.T) {
    repo := NewArtistRepo(newTestDB(t))
    _, err := repo.GetByID(context.Background(), 7)
    assert.ErrorIs(t, err, ErrArtistNotFound)
    assert.ErrorIs(t, err, apperror.ErrNotFound)
    assert.NotErrorIs(t, err, ErrVenueNotFound)
}

func TestArtistUpdateIsFullReplace(t *testing.T) {
    repo := NewArtistRepo(newTestDB(t))
    ctx := context.Background()
    a := createTestArtist(t, repo, "Matt Quevedo")

    update := &model.Artist{ID: a.ID, Name: "Matt Quevedo Trio", City: "New York", State: "NY", Genres: []string{"Jazz"}}
    require.NoError(t, repo.Update(ctx, update))

    got, err := repo.GetByID(ctx, a.ID)
    require.NoError(t, err)
    assert.Equal(t, update, got)
    assert.Empty(t, got.Phone)
}

func TestArtistUpdateNotFound(t *testing.T) {
    repo := NewArtistRepo(newTestDB(t))
    err := repo.Update(context.Background(), &model.Artist{ID: 3, Name: "x", City: "y", State: "CA"})
    assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistDelete(t *testing.T) {
    db := newTestDB(t)
    venues, artists, shows := NewVenueRepo(db), NewArtistRepo(db), NewShowRepo(db)
    ctx := context.Background()

    v := createTestVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
    a := createTestArtist(t, artists, "The Wild Sax Band")
    keep := createTestArtist(t, artists, "Guns N Petals")
    createTestShow(t, shows, v.ID, a.ID, testNow.Add(-time.Hour))
    createTestShow(t, shows, v.ID, keep.ID, testNow.Add(-time.Hour))

    require.NoError(t, artists.Delete(ctx, a.ID))

    n, err := artists.Count(ctx)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n)
    n, err = shows.Count(ctx)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n)

    err = artists.Delete(ctx, a.ID)
    assert.ErrorIs(t, err, ErrArtistNotFound)
    n, err = artists.Count(ctx)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n, "failed delete leaves the store unchanged")
}

func TestArtistListAll(t *testing.T) {
    repo := NewArtistRepo(newTestDB(t))
    ctx := context.Background()

    got, err := repo.ListAll(ctx)
    require.NoError(t, err)
    assert.Empty(t, got)

    b := createTestArtist(t, repo, "Zed")
    a := createTestArtist(t, repo, "Alpha")

    got, err = repo.ListAll(ctx)
    require.NoError(t, err)
    assert.Equal(t, []model.ArtistSummary{{ID: b.ID, Name: "Zed"}, {ID: a.ID, Name: "Alpha"}}, got)
}

func TestArtistSearchByName(t *testing.T) {
    db := newTestDB(t)
    repo := NewArtistRepo(db)
    ctx := context.Background()

    gnp := createTestArtist(t, repo, "Guns N Petals")
    matt := createTestArtist(t, repo, "Matt Quevedo")
    sax := createTestArtist(t, repo, "The Wild Sax Band")

    v := createTestVenue(t, NewVenueRepo(db), "The Musical Hop", "San Francisco", "CA")
    shows := NewShowRepo(db)
    createTestShow(t, shows, v.ID, sax.ID, testNow.Add(time.Hour))
    createTestShow(t, shows, v.ID, sax.ID, testNow.Add(48*time.Hour))
    createTestShow(t, shows, v.ID, gnp.ID, testNow.Add(-time.Hour))

    items, total, err := repo.SearchByName(ctx, "A", testNow)
    require.NoError(t, err)
    assert.EqualValues(t, 3, total)
    assert.Equal(t, []model.ArtistSummary{
        {ID: gnp.ID, Name: "Guns N Petals"},
        {ID: matt.ID, Name: "Matt Quevedo"},
        {ID: sax.ID, Name: "The Wild Sax Band", NumUpcomingShows: 2},
    }, items)

    items, total, err = repo.SearchByName(ctx, "band", testNow)
    require.NoError(t, err)
    assert.EqualValues(t, 1, total)
    require.Len(t, items, 1)
    assert.Equal(t, sax.ID, items[0].ID)

    items, total, err = repo.SearchByName(ctx, "", testNow)
    require.NoError(t, err)
    all, err := repo.Count(ctx)
    require.NoError(t, err)
    assert.Equal(t, all, total)
    assert.Len(t, items, int(all))
}
