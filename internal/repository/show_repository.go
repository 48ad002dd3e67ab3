package repository

// A show links one venue and one artist at a start time.  This file also
// holds the past/upcoming aggregation queries used by the detail pages.

import (
    "context"      // context for controlling query lifetime
    "database/sql" // sql provides DB abstraction
    "errors"
    "fmt"
    "time"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/model"
)

// period selects shows relative to the evaluation instant.  The operators
// are fixed strings, never user input.
type period string

const (
    past     period = "<=" // start_time <= now
    upcoming period = ">"  // start_time >  now
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
    db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
    return &ShowRepo{db: db}
}

// Create inserts a show after checking, in the same transaction, that both
// the venue and the artist exist.  A missing reference yields an error
// matching apperror.ErrReferential and nothing is written.  s.StartTime is
// normalized to UTC seconds.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) (err error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return apperror.Persistence("create show", err)
    }
    // Ensure rollback unless committed
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    if err = requireRow(ctx, tx, `SELECT 1 FROM venues WHERE id = ?`, s.VenueID); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return apperror.Referential("create show", fmt.Sprintf("venue %d does not exist", s.VenueID))
        }
        return apperror.Persistence("create show", err)
    }
    if err = requireRow(ctx, tx, `SELECT 1 FROM artists WHERE id = ?`, s.ArtistID); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return apperror.Referential("create show", fmt.Sprintf("artist %d does not exist", s.ArtistID))
        }
        return apperror.Persistence("create show", err)
    }

    start := dbTime(s.StartTime)
    const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
    if _, err = tx.ExecContext(ctx, q, s.VenueID, s.ArtistID, start); err != nil {
        return apperror.Persistence("create show", err)
    }
    if err = tx.Commit(); err != nil {
        return apperror.Persistence("create show", err)
    }
    s.StartTime = start
    return nil
}

func requireRow(ctx context.Context, tx *sql.Tx, q string, id uint64) error {
    var one int
    return tx.QueryRowContext(ctx, q, id).Scan(&one)
}

// ListAll returns every show joined with the display fields of its venue
// and artist, ordered by start time, then venue id, then artist id.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
    const q = `SELECT v.id, v.name, v.image_link, a.id, a.name, a.image_link, s.start_time
               FROM shows s
               JOIN venues v  ON v.id = s.venue_id
               JOIN artists a ON a.id = s.artist_id
               ORDER BY s.start_time, s.venue_id, s.artist_id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, apperror.Persistence("list shows", err)
    }
    defer rows.Close()

    out := []model.ShowListing{}
    for rows.Next() {
        var l model.ShowListing
        if err := rows.Scan(&l.VenueID, &l.VenueName, &l.VenueImageLink,
            &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
            return nil, apperror.Persistence("list shows", err)
        }
        l.StartTime = l.StartTime.UTC()
        out = append(out, l)
    }
    if err := rows.Err(); err != nil {
        return nil, apperror.Persistence("list shows", err)
    }
    return out, nil
}

// Count returns the number of stored shows.
func (r *ShowRepo) Count(ctx context.Context) (int64, error) {
    var n int64
    if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows`).Scan(&n); err != nil {
        return 0, apperror.Persistence("count shows", err)
    }
    return n, nil
}

// VenuePastShows lists the artists that played venueID at or before now,
// ordered by start time.
func (r *ShowRepo) VenuePastShows(ctx context.Context, venueID uint64, now time.Time) ([]model.ArtistShow, error) {
    return r.venueShows(ctx, venueID, now, past)
}

// VenueUpcomingShows lists the artists booked at venueID after now.
func (r *ShowRepo) VenueUpcomingShows(ctx context.Context, venueID uint64, now time.Time) ([]model.ArtistShow, error) {
    return r.venueShows(ctx, venueID, now, upcoming)
}

// ArtistPastShows lists the venues artistID played at or before now.
func (r *ShowRepo) ArtistPastShows(ctx context.Context, artistID uint64, now time.Time) ([]model.VenueShow, error) {
    return r.artistShows(ctx, artistID, now, past)
}

// ArtistUpcomingShows lists the venues artistID is booked at after now.
func (r *ShowRepo) ArtistUpcomingShows(ctx context.Context, artistID uint64, now time.Time) ([]model.VenueShow, error) {
    return r.artistShows(ctx, artistID, now, upcoming)
}

// The counters below run their own COUNT(*) rather than measuring a list,
// so a count and a list fetched at different instants may disagree.

func (r *ShowRepo) VenuePastShowsCount(ctx context.Context, venueID uint64, now time.Time) (int64, error) {
    return r.count(ctx, "venue_id", venueID, now, past)
}

func (r *ShowRepo) VenueUpcomingShowsCount(ctx context.Context, venueID uint64, now time.Time) (int64, error) {
    return r.count(ctx, "venue_id", venueID, now, upcoming)
}

func (r *ShowRepo) ArtistPastShowsCount(ctx context.Context, artistID uint64, now time.Time) (int64, error) {
    return r.count(ctx, "artist_id", artistID, now, past)
}

func (r *ShowRepo) ArtistUpcomingShowsCount(ctx context.Context, artistID uint64, now time.Time) (int64, error) {
    return r.count(ctx, "artist_id", artistID, now, upcoming)
}

func (r *ShowRepo) venueShows(ctx context.Context, venueID uint64, now time.Time, p period) ([]model.ArtistShow, error) {
    q := `SELECT a.id, a.name, a.image_link, s.start_time
          FROM shows s
          JOIN artists a ON a.id = s.artist_id
          WHERE s.venue_id = ? AND s.start_time ` + string(p) + ` ?
          ORDER BY s.start_time, a.id`
    rows, err := r.db.QueryContext(ctx, q, venueID, dbTime(now))
    if err != nil {
        return nil, apperror.Persistence("list venue shows", err)
    }
    defer rows.Close()

    out := []model.ArtistShow{}
    for rows.Next() {
        var s model.ArtistShow
        if err := rows.Scan(&s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartTime); err != nil {
            return nil, apperror.Persistence("list venue shows", err)
        }
        s.StartTime = s.StartTime.UTC()
        out = append(out, s)
    }
    if err := rows.Err(); err != nil {
        return nil, apperror.Persistence("list venue shows", err)
    }
    return out, nil
}

func (r *ShowRepo) artistShows(ctx context.Context, artistID uint64, now time.Time, p period) ([]model.VenueShow, error) {
    q := `SELECT v.id, v.name, v.image_link, s.start_time
          FROM shows s
          JOIN venues v ON v.id = s.venue_id
          WHERE s.artist_id = ? AND s.start_time ` + string(p) + ` ?
          ORDER BY s.start_time, v.id`
    rows, err := r.db.QueryContext(ctx, q, artistID, dbTime(now))
    if err != nil {
        return nil, apperror.Persistence("list artist shows", err)
    }
    defer rows.Close()

    out := []model.VenueShow{}
    for rows.Next() {
        var s model.VenueShow
        if err := rows.Scan(&s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartTime); err != nil {
            return nil, apperror.Persistence("list artist shows", err)
        }
        s.StartTime = s.StartTime.UTC()
        out = append(out, s)
    }
    if err := rows.Err(); err != nil {
        return nil, apperror.Persistence("list artist shows", err)
    }
    return out, nil
}

// count runs COUNT(*) over shows filtered by column (venue_id or artist_id,
// both constants chosen by the callers above).
func (r *ShowRepo) count(ctx context.Context, column string, id uint64, now time.Time, p period) (int64, error) {
    q := `SELECT COUNT(*) FROM shows WHERE ` + column + ` = ? AND start_time ` + string(p) + ` ?`
    var n int64
    if err := r.db.QueryRowContext(ctx, q, id, dbTime(now)).Scan(&n); err != nil {
        return 0, apperror.Persistence("count shows", err)
    }
    return n, nil
}
