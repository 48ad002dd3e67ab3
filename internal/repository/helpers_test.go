package repository

import (
    "context"
    "database/sql"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/require"

    "github.com/iliyamo/venue-booking/internal/database"
    "github.com/iliyamo/venue-booking/internal/model"
)

// testNow is the evaluation instant used by every aggregation test.
var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *sql.DB {
    t.Helper()
    db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
    require.NoError(t, err, "failed to create test db")
    t.Cleanup(func() { db.Close() })
    return db
}

func createTestVenue(t *testing.T, repo *VenueRepo, name, city, state string) *model.Venue {
    t.Helper()
    v := &model.Venue{
        Name:    name,
        City:    city,
        State:   state,
        Address: "1015 Folsom Street",
        Phone:   "123-123-1234",
        Genres:  []string{"Jazz"},
    }
    require.NoError(t, repo.Create(context.Background(), v))
    return v
}

func createTestArtist(t *testing.T, repo *ArtistRepo, name string) *model.Artist {
    t.Helper()
    a := &model.Artist{
        Name:   name,
        City:   "San Francisco",
        State:  "CA",
        Phone:  "326-123-5000",
        Genres: []string{"Rock n Roll"},
    }
    require.NoError(t, repo.Create(context.Background(), a))
    return a
}

func createTestShow(t *testing.T, repo *ShowRepo, venueID, artistID uint64, start time.Time) {
    t.Helper()
    require.NoError(t, repo.Create(context.Background(), &model.Show{
        VenueID: venueID, ArtistID: artistID, StartTime: start,
    }))
}
