// Package view renders HTML pages from the embedded templates.
package view

import (
    "embed"
    "fmt"
    "html/template"
    "io"
    "io/fs"
    "slices"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const (
    layout   = "templates/layouts/main.html"
    partials = "templates/partials/*.html"
)

// Flash is a one-shot notice shown at the top of the rendered page.  Kind is
// "success" or "danger"; Errors holds per-field validation messages.
type Flash struct {
    Kind     string
    Messages []string
    Errors   map[string][]string
}

// Page is the value every template receives.
type Page struct {
    Title string
    Flash *Flash
    Data  any
}

// Renderer implements echo.Renderer.  Each page is parsed together with the
// layout and the shared partials into its own template set so that every
// page can define its own "content" block.
type Renderer struct {
    pages map[string]*template.Template
}

// New parses every embedded page.  Page names are their path below
// templates/ without extension, e.g. "pages/home" or "forms/new_venue".
func New() (*Renderer, error) {
    return NewFromFS(templateFS)
}

// NewFromFS is New over an arbitrary filesystem laid out like the embedded
// one.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
    r := &Renderer{pages: map[string]*template.Template{}}
    err := fs.WalkDir(fsys, "templates", func(path string, d fs.DirEntry, err error) error {
        if err != nil {
            return err
        }
        if d.IsDir() {
            if path == "templates/layouts" || path == "templates/partials" {
                return fs.SkipDir
            }
            return nil
        }
        if !strings.HasSuffix(path, ".html") {
            return nil
        }
        name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
        t, err := template.New(name).Funcs(Funcs).ParseFS(fsys, layout, partials, path)
        if err != nil {
            return fmt.Errorf("view: parse %s: %w", name, err)
        }
        r.pages[name] = t
        return nil
    })
    if err != nil {
        return nil, err
    }
    return r, nil
}

// Render executes the layout for the named page.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
    t, ok := r.pages[name]
    if !ok {
        return fmt.Errorf("view: unknown page %q", name)
    }
    return t.ExecuteTemplate(w, "base", data)
}

// Has reports whether name is a known page.
func (r *Renderer) Has(name string) bool {
    _, ok := r.pages[name]
    return ok
}

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
    "datetime": FormatDatetime,
    "join":     strings.Join,
    "contains": slices.Contains[[]string],
    "field": func(name, label, value, placeholder string) fieldData {
        return fieldData{Name: name, Label: label, Value: value, Placeholder: placeholder}
    },
    "choices": func(choices []string, selected string) selectData {
        return selectData{Choices: choices, Selected: selected}
    },
    "multi": func(choices, selected []string) multiSelectData {
        return multiSelectData{Choices: choices, Selected: selected}
    },
}

// arguments of the partials in templates/partials
type (
    fieldData struct {
        Name, Label, Value, Placeholder string
    }
    selectData struct {
        Choices  []string
        Selected string
    }
    multiSelectData struct {
        Choices  []string
        Selected []string
    }
)

// Datetime styles.
const (
    StyleFull   = "full"
    StyleMedium = "medium"
)

var datetimeLayouts = map[string]string{
    StyleFull:   "Monday January, 2, 2006 at 3:04PM",
    StyleMedium: "Mon 01, 02, 2006 3:04PM",
}

// FormatDatetime renders t in one of the named styles.  Unknown styles fall
// back to medium.
func FormatDatetime(t time.Time, style string) string {
    l, ok := datetimeLayouts[style]
    if !ok {
        l = datetimeLayouts[StyleMedium]
    }
    return t.Format(l)
}
