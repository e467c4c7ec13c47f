// Package errors provides standardized domain errors that express the kind of
// failure rather than infrastructure details. Use cases return these errors and
// the HTTP layer maps each kind to a status code.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds shared by every domain module.
var (
	// ErrInvalidInput indicates the caller supplied missing or malformed input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates the service is misconfigured (e.g., a required
	// secret or API key is absent). Not retryable without operator intervention.
	ErrConfiguration = errors.New("configuration error")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates a third-party API failed or returned an unusable response.
	ErrUpstream = errors.New("upstream error")
)

// kindError is a domain error whose message is safe to return to clients and
// whose kind is matched through errors.Is.
type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// Define creates a domain error of the given kind. The message is returned
// verbatim by Error() so handlers can expose it without parsing.
func Define(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
