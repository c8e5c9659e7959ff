package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the base error for entity validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle indicates a task without a title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong indicates a title longer than MaxTitleLength runes.
	ErrTitleTooLong = errors.New("title is too long")

	// ErrEmptyDescription indicates a task without a description.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrDescriptionTooLong indicates a description longer than MaxDescriptionLength runes.
	ErrDescriptionTooLong = errors.New("description is too long")

	// ErrInvalidID indicates a task id below 1.
	ErrInvalidID = errors.New("invalid task id")

	// ErrInvalidAction indicates an audit action outside the closed enumeration.
	ErrInvalidAction = errors.New("invalid audit action")
)

// ValidationError describes which field failed validation and why.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation as a match so callers can check the whole family.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
