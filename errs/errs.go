package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or invalid required fields.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// AuthorizationError reports a caller acting on a resource it does not own.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

func Forbidden(msg string) error { return &AuthorizationError{Msg: msg} }

// StoreError wraps infrastructure failures from the document store so
// callers can tell retry-worthy failures from terminal ones.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return "store: " + e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) error { return &StoreError{Op: op, Err: err} }

// SearchError reports a failed location search.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string { return "location search failed: " + e.Err.Error() }
func (e *SearchError) Unwrap() error { return e.Err }

// WeatherFetchError reports a failed weather fetch.
type WeatherFetchError struct {
	Err error
}

func (e *WeatherFetchError) Error() string { return "weather fetch failed: " + e.Err.Error() }
func (e *WeatherFetchError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsForbidden(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}
