package view

import (
    "sort"

    "golang.org/x/text/language"
    "golang.org/x/text/message"
)

var lang = language.AmericanEnglish

// flash message keys
const (
    keyListed            = "flash.listed"
    keyShowListed        = "flash.show.listed"
    keyValidationFailed  = "flash.validation_failed"
    keyShowInvalid       = "flash.show.validation_failed"
    keyPersistenceFailed = "flash.persistence_failed"
    keyShowNotStored     = "flash.show.persistence_failed"
    keyShowReference     = "flash.show.referential"
    keyFieldErrors       = "flash.field_errors"
)

func init() {
    for key, msg := range map[string]string{
        keyListed:            "%s %s was successfully listed!",
        keyShowListed:        "Show was successfully listed!",
        keyValidationFailed:  "An error occurred due to form validation. %s %s could not be %s.",
        keyShowInvalid:       "An error occurred due to form validation. Show could not be listed.",
        keyPersistenceFailed: "An error occurred due to database insertion error. %s %s could not be %s.",
        keyShowNotStored:     "An error occurred due to database insertion error. Show could not be listed.",
        keyShowReference:     "Show could not be listed: %s.",
        keyFieldErrors:       "%d field(s) need attention.",
    } {
        if err := message.SetString(lang, key, msg); err != nil {
            panic(err)
        }
    }
}

var printer = message.NewPrinter(lang)

// Action names what a form submission tried to do.
type Action string

const (
    Listed  Action = "listed"
    Updated Action = "updated"
)

// ListedFlash announces a successful create of entity ("Venue", "Artist").
func ListedFlash(entity, name string) *Flash {
    return &Flash{Kind: "success", Messages: []string{printer.Sprintf(keyListed, entity, name)}}
}

// ShowListedFlash announces a successful booking.
func ShowListedFlash() *Flash {
    return &Flash{Kind: "success", Messages: []string{printer.Sprintf(keyShowListed)}}
}

// ValidationFlash reports rejected form fields.  An empty entity means a
// show, which has no name to report.
func ValidationFlash(entity, name string, action Action, fields map[string][]string) *Flash {
    var msg string
    if entity == "" {
        msg = printer.Sprintf(keyShowInvalid)
    } else {
        msg = printer.Sprintf(keyValidationFailed, entity, name, string(action))
    }
    msgs := []string{msg}
    if n := len(fields); n > 0 {
        msgs = append(msgs, printer.Sprintf(keyFieldErrors, n))
    }
    return &Flash{Kind: "danger", Messages: msgs, Errors: fields}
}

// PersistenceFlash is the generic notice for a store failure.
func PersistenceFlash(entity, name string, action Action) *Flash {
    if entity == "" {
        return &Flash{Kind: "danger", Messages: []string{printer.Sprintf(keyShowNotStored)}}
    }
    return &Flash{Kind: "danger", Messages: []string{printer.Sprintf(keyPersistenceFailed, entity, name, string(action))}}
}

// ReferentialFlash names the missing venue or artist of a show.
func ReferentialFlash(detail string) *Flash {
    return &Flash{Kind: "danger", Messages: []string{printer.Sprintf(keyShowReference, detail)}}
}

// FieldNames returns the failing fields in a stable order.
func (f *Flash) FieldNames() []string {
    if f == nil {
        return nil
    }
    out := make([]string, 0, len(f.Errors))
    for k := range f.Errors {
        out = append(out, k)
    }
    sort.Strings(out)
    return out
}
