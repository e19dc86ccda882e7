// Package domain holds the quote model and the errors the service layer
// reports. Nothing here knows about HTTP; adapters map these errors to
// status codes.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched with errors.Is. The typed errors below unwrap to them.
var (
	// ErrNotFound means the requested quote or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness rule, such as usernames, was violated.
	ErrConflict = errors.New("conflict")

	// ErrValidation means input failed the quote rules.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable means a dependency, such as a seed source, could not be used.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the missing entity, e.g. quote "42".
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError reports that entity id does not exist.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports that Entity.Field == Value is already taken.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// Unwrap returns ErrConflict.
func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError reports that entity.field == value is taken.
func NewConflictError(entity, field, value string) error {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// Field error codes.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	CodeNotAllowed  = "not_allowed" // client sent a server-assigned field
	CodeInvalid     = "invalid"
)

// FieldError is one rejected input field. An empty Field means the input
// as a whole, such as a body that is not JSON.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ValidationError collects every problem found in one input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

// Error lists every field problem after the summary message.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}

	var b strings.Builder
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		if f.Field != "" {
			b.WriteString(f.Field + ": ")
		}
		b.WriteString(f.Message)
	}

	return fmt.Sprintf("validation failed: %s (%s)", e.Message, b.String())
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field with CodeInvalid.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Message: message,
		Fields:  []FieldError{{Field: field, Code: CodeInvalid, Message: message}},
	}
}

// NewFieldValidationError returns nil for an empty list so validators can
// return its result directly.
func NewFieldValidationError(message string, fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Message: message, Fields: fields}
}

// UnavailableError reports a dependency, such as a seed source, that could
// not be reached.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("service %q unavailable", e.Service)
	}

	return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
}

// Unwrap returns ErrUnavailable.
func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// NewUnavailableError reports that service could not be used, and why.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation reports whether err wraps ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsUnavailable reports whether err wraps ErrUnavailable.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
