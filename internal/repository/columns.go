package repository

import (
    "strings"
    "time"

    jsoniter "github.com/json-iterator/go"
)

// genres are stored verbatim, so HTML escaping ("R&B") is switched off
var json = jsoniter.Config{EscapeHTML: false, SortMapKeys: true}.Froze()

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
    Scan(dest ...any) error
}

// encodeGenres serializes the ordered genre list into the TEXT column.
func encodeGenres(genres []string) (string, error) {
    if genres == nil {
        genres = []string{}
    }
    b, err := json.Marshal(genres)
    if err != nil {
        return "", err
    }
    return string(b), nil
}

// decodeGenres is the inverse of encodeGenres.  An empty column decodes to
// an empty list.
func decodeGenres(raw string) ([]string, error) {
    out := []string{}
    if strings.TrimSpace(raw) == "" {
        return out, nil
    }
    if err := json.Unmarshal([]byte(raw), &out); err != nil {
        return nil, err
    }
    return out, nil
}

// dbTime normalizes a timestamp before it is written or compared: UTC,
// whole seconds.
func dbTime(t time.Time) time.Time {
    return t.UTC().Truncate(time.Second)
}

// likePattern turns a user search term into a substring LIKE pattern using
// '!' as escape character, so '%' and '_' typed by the user match
// literally.  An empty term yields "%%", which matches every row.
func likePattern(term string) string {
    r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
    return "%" + r.Replace(term) + "%"
}
