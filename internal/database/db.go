package database

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    _ "github.com/go-sql-driver/mysql"
    _ "modernc.org/sqlite"

    "github.com/iliyamo/venue-booking/internal/config"
)

// Dialect names the SQL flavour behind a *sql.DB.  Queries in the
// repository package are written to run unchanged on both; only the schema
// differs.
type Dialect string

const (
    MySQL  Dialect = "mysql"
    SQLite Dialect = "sqlite"
)

// Open connects to the store described by cfg, verifies the connection and
// applies the schema.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
    switch Dialect(cfg.Driver) {
    case MySQL:
        return OpenMySQL(ctx, cfg)
    case SQLite:
        return OpenSQLite(ctx, cfg.SQLitePath)
    default:
        return nil, fmt.Errorf("database: unsupported driver %q", cfg.Driver)
    }
}

// OpenMySQL connects to MySQL and verifies the connection.
func OpenMySQL(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
    auth := cfg.User
    if cfg.Pass != "" {
        auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Pass)
    }
    // parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
    // clientFoundRows=true -> RowsAffected counts matched rows, so a full
    // replace that changes nothing is not mistaken for a missing id
    dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
        auth, cfg.Host, cfg.Port, cfg.Name)

    db, err := sql.Open("mysql", dsn)
    if err != nil {
        return nil, fmt.Errorf("database: opening mysql: %w", err)
    }

    // Pool settings
    db.SetMaxOpenConns(cfg.MaxOpenConns)
    db.SetMaxIdleConns(cfg.MaxOpenConns)
    db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

    if err := ping(ctx, db); err != nil {
        db.Close()
        return nil, err
    }
    if err := Migrate(ctx, db, MySQL); err != nil {
        db.Close()
        return nil, err
    }
    return db, nil
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
// Foreign keys are enforced on every connection and times are written in
// a fixed layout so that they compare correctly as text.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
    dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
    db, err := sql.Open("sqlite", dsn)
    if err != nil {
        return nil, fmt.Errorf("database: opening sqlite: %w", err)
    }
    // one writer at a time; a single connection also keeps ":memory:" stable
    db.SetMaxOpenConns(1)

    if err := ping(ctx, db); err != nil {
        db.Close()
        return nil, err
    }
    if err := Migrate(ctx, db, SQLite); err != nil {
        db.Close()
        return nil, err
    }
    return db, nil
}

func ping(ctx context.Context, db *sql.DB) error {
    // Ping with timeout
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        return fmt.Errorf("database: ping: %w", err)
    }
    return nil
}
