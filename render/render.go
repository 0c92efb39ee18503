// Package render produces text from records through Go templates, for
// schemas that opt into rendering.
//
// Template files live in a template directory (see the config package) and
// use the .tmpl extension. The template name comes from the schema's
// Template field, or is derived from the schema name: split on capitals,
// the word "Model" dropped, joined with underscores and lowercased
// (CustomerModel renders through customer.tmpl).
package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/roach88/serdex/model"
)

// Error indicates a template that could not be located or executed.
type Error struct {
	Template string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render template %q: %v", e.Template, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsRenderError reports whether err is or wraps an *Error.
func IsRenderError(err error) bool {
	var re *Error
	return errors.As(err, &re)
}

var capitalRuns = regexp.MustCompile("[A-Z][^A-Z]*")

// TemplateName returns the template name for a schema, without extension.
func TemplateName(sc *model.Schema) string {
	if sc.Template != "" {
		return sc.Template
	}
	parts := capitalRuns.FindAllString(sc.Name, -1)
	if len(parts) == 0 {
		return strings.ToLower(sc.Name)
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "Model" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, "_"))
}

// Render executes the record's template from dir against the record's
// exported field values. Entries in extra are merged over the fields, for
// templates that need variables beyond the record's own.
func Render(rec *model.Record, dir string, extra map[string]any) (string, error) {
	name := TemplateName(rec.Schema())
	path := filepath.Join(dir, name+".tmpl")

	if _, err := os.Stat(path); err != nil {
		return "", &Error{Template: name, Err: err}
	}
	tpl, err := template.ParseFiles(path)
	if err != nil {
		return "", &Error{Template: name, Err: err}
	}

	data := rec.Export()
	for k, v := range extra {
		data[k] = v
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", &Error{Template: name, Err: err}
	}
	return buf.String(), nil
}
