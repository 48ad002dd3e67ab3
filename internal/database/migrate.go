package database

import (
    "context"
    "database/sql"
    "fmt"
)

// Statements are executed one at a time: the MySQL driver rejects
// multi-statement Exec calls unless multiStatements is enabled.
var schema = map[Dialect][]string{
    SQLite: {
        `CREATE TABLE IF NOT EXISTS venues (
            id                  INTEGER PRIMARY KEY AUTOINCREMENT,
            name                TEXT    NOT NULL,
            city                TEXT    NOT NULL,
            state               TEXT    NOT NULL,
            address             TEXT    NOT NULL DEFAULT '',
            phone               TEXT    NOT NULL DEFAULT '',
            image_link          TEXT    NOT NULL DEFAULT '',
            facebook_link       TEXT    NOT NULL DEFAULT '',
            website             TEXT    NOT NULL DEFAULT '',
            genres              TEXT    NOT NULL DEFAULT '[]',
            seeking_talent      BOOLEAN NOT NULL DEFAULT 0,
            seeking_description TEXT    NOT NULL DEFAULT ''
        )`,
        `CREATE TABLE IF NOT EXISTS artists (
            id                  INTEGER PRIMARY KEY AUTOINCREMENT,
            name                TEXT    NOT NULL,
            city                TEXT    NOT NULL,
            state               TEXT    NOT NULL,
            phone               TEXT    NOT NULL DEFAULT '',
            genres              TEXT    NOT NULL DEFAULT '[]',
            image_link          TEXT    NOT NULL DEFAULT '',
            facebook_link       TEXT    NOT NULL DEFAULT '',
            website             TEXT    NOT NULL DEFAULT '',
            seeking_venue       BOOLEAN NOT NULL DEFAULT 0,
            seeking_description TEXT    NOT NULL DEFAULT ''
        )`,
        `CREATE TABLE IF NOT EXISTS shows (
            venue_id   INTEGER  NOT NULL REFERENCES venues(id),
            artist_id  INTEGER  NOT NULL REFERENCES artists(id),
            start_time DATETIME NOT NULL,
            PRIMARY KEY (venue_id, artist_id, start_time)
        )`,
        `CREATE INDEX IF NOT EXISTS idx_shows_artist ON shows(artist_id, start_time)`,
        `CREATE INDEX IF NOT EXISTS idx_venues_area ON venues(state, city)`,
    },
    MySQL: {
        `CREATE TABLE IF NOT EXISTS venues (
            id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            name                VARCHAR(255)  NOT NULL,
            city                VARCHAR(120)  NOT NULL,
            state               VARCHAR(120)  NOT NULL,
            address             VARCHAR(120)  NOT NULL DEFAULT '',
            phone               VARCHAR(120)  NOT NULL DEFAULT '',
            image_link          VARCHAR(500)  NOT NULL DEFAULT '',
            facebook_link       VARCHAR(120)  NOT NULL DEFAULT '',
            website             VARCHAR(120)  NOT NULL DEFAULT '',
            genres              TEXT          NOT NULL,
            seeking_talent      BOOLEAN       NOT NULL DEFAULT FALSE,
            seeking_description VARCHAR(500)  NOT NULL DEFAULT '',
            KEY idx_venues_area (state, city)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
        `CREATE TABLE IF NOT EXISTS artists (
            id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            name                VARCHAR(255)  NOT NULL,
            city                VARCHAR(120)  NOT NULL,
            state               VARCHAR(120)  NOT NULL,
            phone               VARCHAR(120)  NOT NULL DEFAULT '',
            genres              TEXT          NOT NULL,
            image_link          VARCHAR(500)  NOT NULL DEFAULT '',
            facebook_link       VARCHAR(120)  NOT NULL DEFAULT '',
            website             VARCHAR(120)  NOT NULL DEFAULT '',
            seeking_venue       BOOLEAN       NOT NULL DEFAULT FALSE,
            seeking_description VARCHAR(500)  NOT NULL DEFAULT ''
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
        `CREATE TABLE IF NOT EXISTS shows (
            venue_id   BIGINT UNSIGNED NOT NULL,
            artist_id  BIGINT UNSIGNED NOT NULL,
            start_time DATETIME        NOT NULL,
            PRIMARY KEY (venue_id, artist_id, start_time),
            KEY idx_shows_artist (artist_id, start_time),
            CONSTRAINT fk_shows_venue  FOREIGN KEY (venue_id)  REFERENCES venues(id),
            CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists(id)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
    },
}

// Migrate creates the venues, artists and shows tables when missing.  It is
// idempotent and runs at every start.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
    stmts, ok := schema[d]
    if !ok {
        return fmt.Errorf("database: no schema for dialect %q", d)
    }
    for i, stmt := range stmts {
        if _, err := db.ExecContext(ctx, stmt); err != nil {
            return fmt.Errorf("database: migration step %d: %w", i+1, err)
        }
    }
    return nil
}
