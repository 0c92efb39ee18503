package cueval

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// FieldError is one validation violation, attributed to a field path.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error aggregates every violation found while validating one record.
type Error struct {
	Schema string
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("%s validation failed: %s", e.Schema, strings.Join(msgs, "; "))
}

// IsValidationError reports whether err is or wraps a *Error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// newError converts a CUE evaluation error into an *Error, one FieldError
// per underlying CUE error, attributed via the error's value path.
func newError(schema string, err error) *Error {
	out := &Error{Schema: schema}
	for _, ce := range cueerrors.Errors(err) {
		format, args := ce.Msg()
		out.Fields = append(out.Fields, FieldError{
			Field:   strings.Join(ce.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(out.Fields) == 0 {
		out.Fields = append(out.Fields, FieldError{Message: err.Error()})
	}
	return out
}
