// Package apperror defines the error taxonomy shared by the repository,
// service and handler layers. Handlers only need errors.Is against the
// sentinels below to decide which page or flash to produce.
package apperror

import (
    "errors"
    "fmt"
    "sort"
    "strings"
)

var (
    // ErrValidation marks client-supplied data that failed field rules.
    ErrValidation = errors.New("validation failed")
    // ErrPersistence marks a store read/write failure.
    ErrPersistence = errors.New("persistence failure")
    // ErrReferential marks a show that references a missing venue or artist.
    ErrReferential = errors.New("referential integrity violation")
    // ErrNotFound marks a lookup by id that matched nothing.
    ErrNotFound = errors.New("not found")
)

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
    Entity string
    Fields map[string][]string
}

func (e *ValidationError) Error() string {
    keys := make([]string, 0, len(e.Fields))
    for k := range e.Fields {
        keys = append(keys, k)
    }
    sort.Strings(keys)
    parts := make([]string, 0, len(keys))
    for _, k := range keys {
        parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
    }
    return fmt.Sprintf("%s: invalid %s (%s)", ErrValidation, e.Entity, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validation builds a ValidationError for entity. fields may be nil and
// filled later with Add.
func Validation(entity string, fields map[string][]string) *ValidationError {
    if fields == nil {
        fields = map[string][]string{}
    }
    return &ValidationError{Entity: entity, Fields: fields}
}

// Add appends a message for field.
func (e *ValidationError) Add(field, msg string) {
    e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no field has failed.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// opError wraps a driver error together with the operation and the
// category sentinel so both errors.Is(err, ErrPersistence) and
// errors.Is(err, driverErr) hold.
type opError struct {
    kind error
    op   string
    err  error
}

func (e *opError) Error() string {
    if e.err == nil {
        return e.op + ": " + e.kind.Error()
    }
    return e.op + ": " + e.err.Error()
}

func (e *opError) Unwrap() []error {
    if e.err == nil {
        return []error{e.kind}
    }
    return []error{e.kind, e.err}
}

// Persistence wraps a store failure for op. A nil err yields nil.
func Persistence(op string, err error) error {
    if err == nil {
        return nil
    }
    var oe *opError
    if errors.As(err, &oe) {
        return err
    }
    return &opError{kind: ErrPersistence, op: op, err: err}
}

// Referential reports that op referenced a missing entity.
func Referential(op, msg string) error {
    return &opError{kind: ErrReferential, op: op, err: errors.New(msg)}
}

// NotFound builds a not-found error for resource/id, matching both
// ErrNotFound and base (typically a repository sentinel such as
// ErrVenueNotFound).
func NotFound(base error, resource string, id uint64) error {
    return &opError{kind: ErrNotFound, op: fmt.Sprintf("%s %d", resource, id), err: base}
}

// Detail returns the cause of a categorized error without the operation
// prefix ("artist 7 does not exist"), or err.Error() for other errors.
func Detail(err error) string {
    var oe *opError
    if errors.As(err, &oe) && oe.err != nil {
        return oe.err.Error()
    }
    return err.Error()
}
