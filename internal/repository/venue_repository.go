// Package repository contains data access logic separated from HTTP handlers.
// This file holds the venue queries: CRUD by id, the area listing grouped by
// (city, state) and name search.
package repository

import (
    "context"      // context allows passing deadlines and cancellation signals to DB operations
    "database/sql" // sql provides generic database operations and drivers
    "errors"
    "time"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
    website, genres, seeking_talent, seeking_description`

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection pool which is configured in main.
type VenueRepo struct {
    db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
    return &VenueRepo{db: db}
}

func scanVenue(s rowScanner) (*model.Venue, error) {
    var (
        v      model.Venue
        genres string
    )
    if err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
        &v.FacebookLink, &v.Website, &genres, &v.SeekingTalent, &v.SeekingDescription); err != nil {
        return nil, err
    }
    g, err := decodeGenres(genres)
    if err != nil {
        return nil, err
    }
    v.Genres = g
    return &v, nil
}

// Create inserts a new venue.  On success the venue's ID field is populated
// with the auto-generated value.  The insert is a single statement, so a
// failure leaves no partial row behind.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
    genres, err := encodeGenres(v.Genres)
    if err != nil {
        return apperror.Persistence("create venue", err)
    }
    const q = `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
                   website, genres, seeking_talent, seeking_description)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
        v.FacebookLink, v.Website, genres, v.SeekingTalent, v.SeekingDescription)
    if err != nil {
        return apperror.Persistence("create venue", err)
    }
    id, err := res.LastInsertId()
    if err != nil {
        return apperror.Persistence("create venue", err)
    }
    v.ID = uint64(id)
    return nil
}

// GetByID fetches a venue by its ID.  A missing row yields an error matching
// both ErrVenueNotFound and apperror.ErrNotFound.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
    q := "SELECT " + venueColumns + " FROM venues WHERE id = ?"
    v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, apperror.NotFound(ErrVenueNotFound, "venue", id)
        }
        return nil, apperror.Persistence("get venue", err)
    }
    return v, nil
}

// Update replaces every mutable column of the venue identified by v.ID.
// Fields left empty on v are written as empty: nothing is merged with the
// stored row.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
    genres, err := encodeGenres(v.Genres)
    if err != nil {
        return apperror.Persistence("update venue", err)
    }
    const q = `UPDATE venues
               SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
                   facebook_link = ?, website = ?, genres = ?, seeking_talent = ?, seeking_description = ?
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
        v.FacebookLink, v.Website, genres, v.SeekingTalent, v.SeekingDescription, v.ID)
    if err != nil {
        return apperror.Persistence("update venue", err)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return apperror.Persistence("update venue", err)
    }
    if n == 0 {
        return apperror.NotFound(ErrVenueNotFound, "venue", v.ID)
    }
    return nil
}

// Delete removes a venue together with the shows it hosts.  The deletion
// occurs within a transaction: if the venue does not exist or any statement
// fails, the transaction is rolled back and the store is unchanged.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (err error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return apperror.Persistence("delete venue", err)
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()
    if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
        return apperror.Persistence("delete venue shows", err)
    }
    res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
    if err != nil {
        return apperror.Persistence("delete venue", err)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return apperror.Persistence("delete venue", err)
    }
    if n == 0 {
        err = apperror.NotFound(ErrVenueNotFound, "venue", id)
        return err
    }
    if err = tx.Commit(); err != nil {
        return apperror.Persistence("delete venue", err)
    }
    return nil
}

// ListAreas returns every venue grouped by its literal (city, state) pair,
// each with its number of shows starting after now.  Grouping happens here
// rather than in SQL so that it is case-sensitive regardless of the store's
// collation: "Austin"/"TX" and "austin"/"TX" are two areas.  Areas appear in
// (state, city) order and venues within an area by id.
func (r *VenueRepo) ListAreas(ctx context.Context, now time.Time) ([]model.VenueArea, error) {
    const q = `SELECT v.id, v.name, v.city, v.state,
                      (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > ?)
               FROM venues v
               ORDER BY v.state, v.city, v.id`
    rows, err := r.db.QueryContext(ctx, q, dbTime(now))
    if err != nil {
        return nil, apperror.Persistence("list venue areas", err)
    }
    defer rows.Close()

    type areaKey struct{ city, state string }
    index := map[areaKey]int{}
    areas := []model.VenueArea{}
    for rows.Next() {
        var (
            s           model.VenueSummary
            city, state string
        )
        if err := rows.Scan(&s.ID, &s.Name, &city, &state, &s.NumUpcomingShows); err != nil {
            return nil, apperror.Persistence("list venue areas", err)
        }
        k := areaKey{city, state}
        i, ok := index[k]
        if !ok {
            i = len(areas)
            index[k] = i
            areas = append(areas, model.VenueArea{City: city, State: state})
        }
        areas[i].Venues = append(areas[i].Venues, s)
    }
    if err := rows.Err(); err != nil {
        return nil, apperror.Persistence("list venue areas", err)
    }
    return areas, nil
}

// SearchByName returns the venues whose name contains term together with
// their total, counted by a separate query.  Case sensitivity follows the
// store default (case-insensitive for ASCII on SQLite and on MySQL utf8mb4
// collations).  An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]model.VenueSummary, int64, error) {
    pattern := likePattern(term)

    var total int64
    const countSQL = `SELECT COUNT(*) FROM venues WHERE name LIKE ? ESCAPE '!'`
    if err := r.db.QueryRowContext(ctx, countSQL, pattern).Scan(&total); err != nil {
        return nil, 0, apperror.Persistence("count venues", err)
    }

    const dataSQL = `SELECT v.id, v.name,
                            (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > ?)
                     FROM venues v
                     WHERE v.name LIKE ? ESCAPE '!'
                     ORDER BY v.id`
    rows, err := r.db.QueryContext(ctx, dataSQL, dbTime(now), pattern)
    if err != nil {
        return nil, 0, apperror.Persistence("search venues", err)
    }
    defer rows.Close()

    out := []model.VenueSummary{}
    for rows.Next() {
        var s model.VenueSummary
        if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
            return nil, 0, apperror.Persistence("search venues", err)
        }
        out = append(out, s)
    }
    if err := rows.Err(); err != nil {
        return nil, 0, apperror.Persistence("search venues", err)
    }
    return out, total, nil
}

// Count returns the number of stored venues.
func (r *VenueRepo) Count(ctx context.Context) (int64, error) {
    var n int64
    if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n); err != nil {
        return 0, apperror.Persistence("count venues", err)
    }
    return n, nil
}
