package store

import (
	"errors"
	"fmt"

	"github.com/roach88/serdex/model"
)

// AlreadyExistsError indicates an exact-duplicate save into a schema whose
// duplicate policy forbids it.
type AlreadyExistsError struct {
	Type      string
	KeyFields []string
	Key       model.List
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf(
		"%s: duplicates not allowed: another %s exists with fields %v set to %s",
		e.Type, e.Type, e.KeyFields, model.Canonical(e.Key),
	)
}

// DoesNotExistError indicates a Get that matched no record.
type DoesNotExistError struct {
	Type   string
	Params map[string]any
}

func (e *DoesNotExistError) Error() string {
	return fmt.Sprintf("no %s record found matching params %v", e.Type, e.Params)
}

// MultipleReturnedError indicates a Get that matched more than one record.
type MultipleReturnedError struct {
	Type   string
	Params map[string]any
	Count  int
}

func (e *MultipleReturnedError) Error() string {
	return fmt.Sprintf("%d %s records found matching params %v, want exactly one", e.Count, e.Type, e.Params)
}

// IsAlreadyExists reports whether err is or wraps an *AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

// IsDoesNotExist reports whether err is or wraps a *DoesNotExistError.
func IsDoesNotExist(err error) bool {
	var de *DoesNotExistError
	return errors.As(err, &de)
}

// IsMultipleReturned reports whether err is or wraps a *MultipleReturnedError.
func IsMultipleReturned(err error) bool {
	var me *MultipleReturnedError
	return errors.As(err, &me)
}
