package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
    website, seeking_venue, seeking_description`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
    db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
    return &ArtistRepo{db: db}
}

func scanArtist(s rowScanner) (*model.Artist, error) {
    var (
        a      model.Artist
        genres string
    )
    if err := s.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.ImageLink,
        &a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription); err != nil {
        return nil, err
    }
    g, err := decodeGenres(genres)
    if err != nil {
        return nil, err
    }
    a.Genres = g
    return &a, nil
}

// Create inserts a new artist and assigns the generated ID back to a.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
    genres, err := encodeGenres(a.Genres)
    if err != nil {
        return apperror.Persistence("create artist", err)
    }
    const q = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
                   website, seeking_venue, seeking_description)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, genres, a.ImageLink,
        a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription)
    if err != nil {
        return apperror.Persistence("create artist", err)
    }
    id, err := res.LastInsertId()
    if err != nil {
        return apperror.Persistence("create artist", err)
    }
    a.ID = uint64(id)
    return nil
}

// GetByID retrieves an artist by its ID.  It returns an error matching
// ErrArtistNotFound if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
    q := "SELECT " + artistColumns + " FROM artists WHERE id = ?"
    a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, apperror.NotFound(ErrArtistNotFound, "artist", id)
        }
        return nil, apperror.Persistence("get artist", err)
    }
    return a, nil
}

// Update replaces every mutable column of the artist identified by a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
    genres, err := encodeGenres(a.Genres)
    if err != nil {
        return apperror.Persistence("update artist", err)
    }
    const q = `UPDATE artists
               SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?,
                   facebook_link = ?, website = ?, seeking_venue = ?, seeking_description = ?
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, genres, a.ImageLink,
        a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription, a.ID)
    if err != nil {
        return apperror.Persistence("update artist", err)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return apperror.Persistence("update artist", err)
    }
    if n == 0 {
        return apperror.NotFound(ErrArtistNotFound, "artist", a.ID)
    }
    return nil
}

// Delete removes an artist and every show it is booked into, atomically.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) (err error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return apperror.Persistence("delete artist", err)
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()
    if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
        return apperror.Persistence("delete artist shows", err)
    }
    res, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
    if err != nil {
        return apperror.Persistence("delete artist", err)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return apperror.Persistence("delete artist", err)
    }
    if n == 0 {
        return apperror.NotFound(ErrArtistNotFound, "artist", id)
    }
    if err = tx.Commit(); err != nil {
        return apperror.Persistence("delete artist", err)
    }
    return nil
}

// ListAll returns the id and name of every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.ArtistSummary, error) {
    rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY id`)
    if err != nil {
        return nil, apperror.Persistence("list artists", err)
    }
    defer rows.Close()
    out := []model.ArtistSummary{}
    for rows.Next() {
        var a model.ArtistSummary
        if err := rows.Scan(&a.ID, &a.Name); err != nil {
            return nil, apperror.Persistence("list artists", err)
        }
        out = append(out, a)
    }
    if err := rows.Err(); err != nil {
        return nil, apperror.Persistence("list artists", err)
    }
    return out, nil
}

// SearchByName mirrors VenueRepo.SearchByName for artists.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]model.ArtistSummary, int64, error) {
    pattern := likePattern(term)

    var total int64
    const countSQL = `SELECT COUNT(*) FROM artists WHERE name LIKE ? ESCAPE '!'`
    if err := r.db.QueryRowContext(ctx, countSQL, pattern).Scan(&total); err != nil {
        return nil, 0, apperror.Persistence("count artists", err)
    }

    const dataSQL = `SELECT a.id, a.name,
                            (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > ?)
                     FROM artists a
                     WHERE a.name LIKE ? ESCAPE '!'
                     ORDER BY a.id`
    rows, err := r.db.QueryContext(ctx, dataSQL, dbTime(now), pattern)
    if err != nil {
        return nil, 0, apperror.Persistence("search artists", err)
    }
    defer rows.Close()

    out := []model.ArtistSummary{}
    for rows.Next() {
        var a model.ArtistSummary
        if err := rows.Scan(&a.ID, &a.Name, &a.NumUpcomingShows); err != nil {
            return nil, 0, apperror.Persistence("search artists", err)
        }
        out = append(out, a)
    }
    if err := rows.Err(); err != nil {
        return nil, 0, apperror.Persistence("search artists", err)
    }
    return out, total, nil
}

// Count returns the number of stored artists.
func (r *ArtistRepo) Count(ctx context.Context) (int64, error) {
    var n int64
    if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&n); err != nil {
        return 0, apperror.Persistence("count artists", err)
    }
    return n, nil
}
