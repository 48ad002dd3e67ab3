package view

import (
    "bytes"
    "testing"
    "testing/fstest"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestFormatDatetime(t *testing.T) {
    ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
    assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDatetime(ts, StyleFull))
    assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, StyleMedium))
    assert.Equal(t, FormatDatetime(ts, StyleMedium), FormatDatetime(ts, "bogus"))
}

func TestEmbeddedPagesParse(t *testing.T) {
    r, err := New()
    require.NoError(t, err)
    for _, name := range []string{
        "pages/home", "pages/venues", "pages/search_venues", "pages/show_venue",
        "pages/artists", "pages/search_artists", "pages/show_artist", "pages/shows",
        "forms/new_venue", "forms/edit_venue", "forms/new_artist", "forms/edit_artist",
        "forms/new_show", "errors/404", "errors/500",
    } {
        assert.True(t, r.Has(name), name)
    }
    assert.False(t, r.Has("layouts/main"))
    assert.False(t, r.Has("partials/fields"))
}

func TestRenderFlash(t *testing.T) {
    r, err := New()
    require.NoError(t, err)

    var buf bytes.Buffer
    flash := ValidationFlash("Venue", "The Musical Hop", Listed, map[string][]string{
        "phone": {"Invalid phone number."},
    })
    require.NoError(t, r.Render(&buf, "pages/home", Page{Title: "Home", Flash: flash}, nil))

    out := buf.String()
    assert.Contains(t, out, `alert-danger`)
    assert.Contains(t, out, "An error occurred due to form validation. Venue The Musical Hop could not be listed.")
    assert.Contains(t, out, "<strong>phone</strong>: Invalid phone number.")
    assert.Contains(t, out, "<title>Home | Fyyur</title>")
}

func TestRenderUnknownPage(t *testing.T) {
    r, err := New()
    require.NoError(t, err)
    assert.Error(t, r.Render(&bytes.Buffer{}, "pages/nope", Page{}, nil))
}

func TestNewFromFS(t *testing.T) {
    fsys := fstest.MapFS{
        "templates/layouts/main.html": {Data: []byte(`{{define "base"}}[{{template "content" .}}]{{end}}`)},
        "templates/partials/x.html":   {Data: []byte(`{{define "x"}}x{{end}}`)},
        "templates/pages/when.html":   {Data: []byte(`{{define "content"}}{{datetime .Data "medium"}}{{end}}`)},
        "templates/pages/readme.txt":  {Data: []byte(`ignored`)},
        "templates/errors/404.html":   {Data: []byte(`{{define "content"}}{{template "x"}}{{end}}`)},
    }
    r, err := NewFromFS(fsys)
    require.NoError(t, err)
    assert.True(t, r.Has("errors/404"))
    assert.False(t, r.Has("pages/readme"))

    var when bytes.Buffer
    require.NoError(t, r.Render(&when, "pages/when", Page{Data: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)}, nil))
    assert.Equal(t, "[Fri 01, 02, 2026 3:04PM]", when.String())

    var buf bytes.Buffer
    err = r.Render(&buf, "errors/404", Page{}, nil)
    require.NoError(t, err)
    assert.Equal(t, "[x]", buf.String())
}

func TestFlashMessages(t *testing.T) {
    assert.Equal(t, []string{"Artist Guns N Petals was successfully listed!"}, ListedFlash("Artist", "Guns N Petals").Messages)
    assert.Equal(t, "success", ShowListedFlash().Kind)
    assert.Equal(t,
        "An error occurred due to database insertion error. Venue Hop could not be updated.",
        PersistenceFlash("Venue", "Hop", Updated).Messages[0])
    assert.Equal(t,
        "An error occurred due to database insertion error. Show could not be listed.",
        PersistenceFlash("", "", Listed).Messages[0])
    assert.Equal(t, "Show could not be listed: artist 9 does not exist.", ReferentialFlash("artist 9 does not exist").Messages[0])

    f := ValidationFlash("", "", Listed, map[string][]string{"venue_id": {"x"}, "artist_id": {"y"}})
    assert.Equal(t, []string{"artist_id", "venue_id"}, f.FieldNames())
    assert.Len(t, f.Messages, 2)
    assert.Nil(t, (*Flash)(nil).FieldNames())
}
