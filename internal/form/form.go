// Package form holds the typed inputs of the create and edit pages and the
// rules they are checked against.  Every form lists its rules explicitly,
// field by field; failures come back as *apperror.ValidationError.
package form

import (
    "errors"
    "strconv"
    "strings"
    "time"

    "github.com/go-playground/validator/v10"

    "github.com/iliyamo/venue-booking/internal/apperror"
    "github.com/iliyamo/venue-booking/internal/model"
)

// rule binds one field to a validator tag string.
type rule struct {
    field string
    value any
    tag   string
}

// check runs every rule and collects the failures; the result is empty
// when the form is valid.
func check(entity string, rules []rule) *apperror.ValidationError {
    verr := apperror.Validation(entity, nil)
    for _, r := range rules {
        err := validate.Var(r.value, r.tag)
        if err == nil {
            continue
        }
        var fes validator.ValidationErrors
        if !errors.As(err, &fes) {
            verr.Add(r.field, err.Error())
            continue
        }
        for _, fe := range fes {
            verr.Add(r.field, message(fe))
        }
    }
    return verr
}

// checked interprets an HTML checkbox value; an unchecked box is absent.
func checked(v string) bool {
    switch strings.ToLower(strings.TrimSpace(v)) {
    case "y", "yes", "on", "true", "1":
        return true
    }
    return false
}

func boolValue(b bool) string {
    if b {
        return "y"
    }
    return ""
}

func trimAll(ss []string) []string {
    out := make([]string, 0, len(ss))
    for _, s := range ss {
        if s = strings.TrimSpace(s); s != "" {
            out = append(out, s)
        }
    }
    return out
}

// VenueForm is the body of POST /venues/create and /venues/:id/edit.
type VenueForm struct {
    Name               string   `form:"name"`
    City               string   `form:"city"`
    State              string   `form:"state"`
    Address            string   `form:"address"`
    Phone              string   `form:"phone"`
    ImageLink          string   `form:"image_link"`
    Genres             []string `form:"genres"`
    FacebookLink       string   `form:"facebook_link"`
    Website            string   `form:"website"`
    SeekingTalent      string   `form:"seeking_talent"`
    SeekingDescription string   `form:"seeking_description"`
}

// VenueFormFrom prefills a form from a stored venue.
func VenueFormFrom(v *model.Venue) VenueForm {
    return VenueForm{
        Name:               v.Name,
        City:               v.City,
        State:              v.State,
        Address:            v.Address,
        Phone:              v.Phone,
        ImageLink:          v.ImageLink,
        Genres:             v.Genres,
        FacebookLink:       v.FacebookLink,
        Website:            v.Website,
        SeekingTalent:      boolValue(v.SeekingTalent),
        SeekingDescription: v.SeekingDescription,
    }
}

func (f *VenueForm) normalize() {
    f.Name = strings.TrimSpace(f.Name)
    f.City = strings.TrimSpace(f.City)
    f.State = strings.TrimSpace(f.State)
    f.Address = strings.TrimSpace(f.Address)
    f.Phone = strings.TrimSpace(f.Phone)
    f.ImageLink = strings.TrimSpace(f.ImageLink)
    f.Genres = trimAll(f.Genres)
    f.FacebookLink = strings.TrimSpace(f.FacebookLink)
    f.Website = strings.TrimSpace(f.Website)
    f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
}

// Venue validates the form and returns the venue it describes.
func (f *VenueForm) Venue() (*model.Venue, error) {
    f.normalize()
    verr := check("venue", []rule{
        {"name", f.Name, "required,max=255"},
        {"city", f.City, "required,max=120"},
        {"state", f.State, "required,us_state"},
        {"address", f.Address, "required,max=120"},
        {"phone", f.Phone, "omitempty,phone"},
        {"image_link", f.ImageLink, "omitempty,url,max=500"},
        {"genres", f.Genres, "min=1,dive,genre"},
        {"facebook_link", f.FacebookLink, "omitempty,url,max=120"},
        {"website", f.Website, "omitempty,url,max=120"},
        {"seeking_description", f.SeekingDescription, "max=500"},
    })
    if !verr.Empty() {
        return nil, verr
    }
    return &model.Venue{
        Name:               f.Name,
        City:               f.City,
        State:              f.State,
        Address:            f.Address,
        Phone:              f.Phone,
        ImageLink:          f.ImageLink,
        FacebookLink:       f.FacebookLink,
        Website:            f.Website,
        Genres:             f.Genres,
        SeekingTalent:      checked(f.SeekingTalent),
        SeekingDescription: f.SeekingDescription,
    }, nil
}

// ArtistForm is the body of POST /artists/create and /artists/:id/edit.
type ArtistForm struct {
    Name               string   `form:"name"`
    City               string   `form:"city"`
    State              string   `form:"state"`
    Phone              string   `form:"phone"`
    ImageLink          string   `form:"image_link"`
    Genres             []string `form:"genres"`
    FacebookLink       string   `form:"facebook_link"`
    Website            string   `form:"website"`
    SeekingVenue       string   `form:"seeking_venue"`
    SeekingDescription string   `form:"seeking_description"`
}

func ArtistFormFrom(a *model.Artist) ArtistForm {
    return ArtistForm{
        Name:               a.Name,
        City:               a.City,
        State:              a.State,
        Phone:              a.Phone,
        ImageLink:          a.ImageLink,
        Genres:             a.Genres,
        FacebookLink:       a.FacebookLink,
        Website:            a.Website,
        SeekingVenue:       boolValue(a.SeekingVenue),
        SeekingDescription: a.SeekingDescription,
    }
}

func (f *ArtistForm) normalize() {
    f.Name = strings.TrimSpace(f.Name)
    f.City = strings.TrimSpace(f.City)
    f.State = strings.TrimSpace(f.State)
    f.Phone = strings.TrimSpace(f.Phone)
    f.ImageLink = strings.TrimSpace(f.ImageLink)
    f.Genres = trimAll(f.Genres)
    f.FacebookLink = strings.TrimSpace(f.FacebookLink)
    f.Website = strings.TrimSpace(f.Website)
    f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
}

// Artist validates the form and returns the artist it describes.
func (f *ArtistForm) Artist() (*model.Artist, error) {
    f.normalize()
    verr := check("artist", []rule{
        {"name", f.Name, "required,max=255"},
        {"city", f.City, "required,max=120"},
        {"state", f.State, "required,us_state"},
        {"phone", f.Phone, "omitempty,phone"},
        {"image_link", f.ImageLink, "omitempty,url,max=500"},
        {"genres", f.Genres, "min=1,dive,genre"},
        {"facebook_link", f.FacebookLink, "omitempty,url,max=120"},
        {"website", f.Website, "omitempty,url,max=120"},
        {"seeking_description", f.SeekingDescription, "max=500"},
    })
    if !verr.Empty() {
        return nil, verr
    }
    return &model.Artist{
        Name:               f.Name,
        City:               f.City,
        State:              f.State,
        Phone:              f.Phone,
        Genres:             f.Genres,
        ImageLink:          f.ImageLink,
        FacebookLink:       f.FacebookLink,
        Website:            f.Website,
        SeekingVenue:       checked(f.SeekingVenue),
        SeekingDescription: f.SeekingDescription,
    }, nil
}

// StartTimeLayouts are tried in order when parsing a show's start time.
// Times without a zone are taken as UTC.
var StartTimeLayouts = []string{
    "2006-01-02 15:04:05",
    "2006-01-02 15:04",
    "2006-01-02T15:04:05",
    "2006-01-02T15:04",
    time.RFC3339,
}

// ShowForm is the body of POST /shows/create.
type ShowForm struct {
    VenueID   string `form:"venue_id"`
    ArtistID  string `form:"artist_id"`
    StartTime string `form:"start_time"`
}

// NewShowForm returns the blank form with start_time set to now.
func NewShowForm(now time.Time) ShowForm {
    return ShowForm{StartTime: now.UTC().Format(StartTimeLayouts[0])}
}

// Show validates the form and returns the show it describes.
func (f *ShowForm) Show() (*model.Show, error) {
    f.VenueID = strings.TrimSpace(f.VenueID)
    f.ArtistID = strings.TrimSpace(f.ArtistID)
    f.StartTime = strings.TrimSpace(f.StartTime)

    verr := check("show", []rule{
        {"venue_id", f.VenueID, "required,numeric"},
        {"artist_id", f.ArtistID, "required,numeric"},
        {"start_time", f.StartTime, "required"},
    })

    s := &model.Show{}
    if _, failed := verr.Fields["venue_id"]; !failed {
        s.VenueID = parseID(verr, "venue_id", f.VenueID)
    }
    if _, failed := verr.Fields["artist_id"]; !failed {
        s.ArtistID = parseID(verr, "artist_id", f.ArtistID)
    }
    if _, failed := verr.Fields["start_time"]; !failed {
        t, ok := parseStartTime(f.StartTime)
        if !ok {
            verr.Add("start_time", "Not a valid datetime value.")
        }
        s.StartTime = t
    }
    if !verr.Empty() {
        return nil, verr
    }
    return s, nil
}

// parseID accepts ids in 1..math.MaxInt64, the range of the id columns.
func parseID(verr *apperror.ValidationError, field, raw string) uint64 {
    id, err := strconv.ParseInt(raw, 10, 64)
    if err != nil || id <= 0 {
        verr.Add(field, "Not a valid id.")
        return 0
    }
    return uint64(id)
}

func parseStartTime(raw string) (time.Time, bool) {
    for _, layout := range StartTimeLayouts {
        if t, err := time.Parse(layout, raw); err == nil {
            return t.UTC(), true
        }
    }
    return time.Time{}, false
}
