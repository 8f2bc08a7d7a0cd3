// Package apperrors defines sentinel errors shared across layers.
package apperrors

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation, e.g. a second
	// market analysis for the same project.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates malformed or missing request data.
	// Wrap with fmt.Errorf("%w: ...") to carry a message to the caller.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream indicates a failure in the AI collaborator.
	// Callers may retry.
	ErrUpstream = errors.New("upstream service error")
)
