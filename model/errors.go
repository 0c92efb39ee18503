package model

import (
	"errors"
	"fmt"
)

// InitializationError indicates a schema that cannot produce records: an
// empty name, no key fields, or malformed field declarations. It plays the
// role of the guard against instantiating an abstract record base.
type InitializationError struct {
	Schema string
	Reason string
}

func (e *InitializationError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("schema is not concrete: %s", e.Reason)
	}
	return fmt.Sprintf("schema %s is not concrete: %s", e.Schema, e.Reason)
}

// TypeError indicates input of the wrong shape or type: a non-mapping passed
// where a mapping was expected, heterogeneous reference elements, or an
// unconvertible raw value.
type TypeError struct {
	Op      string
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// ValueError indicates input that is the right shape but an illegal value,
// such as an empty one-to-many reference.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NotRegisteredError indicates a schema name that was never registered.
type NotRegisteredError struct {
	Name string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("schema %q is not registered", e.Name)
}

// IsTypeError reports whether err is or wraps a *TypeError.
func IsTypeError(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

// IsValueError reports whether err is or wraps a *ValueError.
func IsValueError(err error) bool {
	var ve *ValueError
	return errors.As(err, &ve)
}
