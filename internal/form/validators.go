package form

import (
    "fmt"
    "regexp"
    "slices"

    "github.com/go-playground/validator/v10"
)

// Genres are the values accepted in a genres list.
var Genres = []string{
    "Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
    "Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
    "Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
    "Soul", "Other",
}

// States are the two letter codes accepted as a state (50 states plus DC).
var States = []string{
    "AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
    "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
    "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
    "MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
    "WV", "WI", "WY",
}

// 123-456-7890, (123) 456-7890, 123.456.7890, 1234567890
var phoneRe = regexp.MustCompile(`^(\([0-9]{3}\) ?|[0-9]{3}[-. ]?)[0-9]{3}[-. ]?[0-9]{4}$`)

func phoneValidator(fl validator.FieldLevel) bool {
    return phoneRe.MatchString(fl.Field().String())
}

func genreValidator(fl validator.FieldLevel) bool {
    return slices.Contains(Genres, fl.Field().String())
}

func stateValidator(fl validator.FieldLevel) bool {
    return slices.Contains(States, fl.Field().String())
}

var validate = newValidator()

func newValidator() *validator.Validate {
    v := validator.New(validator.WithRequiredStructEnabled())
    v.RegisterValidation("phone", phoneValidator)
    v.RegisterValidation("genre", genreValidator)
    v.RegisterValidation("us_state", stateValidator)
    return v
}

// message turns a failed tag into the text shown next to the field.
func message(fe validator.FieldError) string {
    switch fe.Tag() {
    case "required":
        return "This field is required."
    case "phone":
        return "Invalid phone number."
    case "genre":
        return fmt.Sprintf("'%v' is not a valid choice.", fe.Value())
    case "us_state":
        return "Not a valid choice."
    case "url":
        return "Invalid URL."
    case "max":
        return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
    case "min":
        return "Select at least one option."
    case "numeric", "gt":
        return "Not a valid id."
    default:
        return "Invalid value."
    }
}
