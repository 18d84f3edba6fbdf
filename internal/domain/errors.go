package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation        = errors.New("validation error")
	ErrUnsupportedFormat = errors.New("unsupported file format")

	ErrNetwork           = errors.New("completion network error")
	ErrUpstream          = errors.New("completion upstream error")
	ErrMalformedResponse = errors.New("completion malformed response")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// CompletionError is the failure variant of a completion call.
// errors.Is matches it against ErrNetwork, ErrUpstream or ErrMalformedResponse
// according to Kind, and against Cause when one is set.
type CompletionError struct {
	Kind   FailureKind
	Detail string
	Cause  error
}

func (e *CompletionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.sentinel(), e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Detail)
}

func (e *CompletionError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCompletionError creates a CompletionError of the given kind.
func NewCompletionError(kind FailureKind, detail string, cause error) *CompletionError {
	return &CompletionError{Kind: kind, Detail: detail, Cause: cause}
}

func (k FailureKind) sentinel() error {
	switch k {
	case FailureNetwork:
		return ErrNetwork
	case FailureUpstream:
		return ErrUpstream
	default:
		return ErrMalformedResponse
	}
}

// IsCompletionFailure reports whether err originates from a completion call.
func IsCompletionFailure(err error) bool {
	var ce *CompletionError
	return errors.As(err, &ce)
}
