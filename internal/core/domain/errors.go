package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown annotator or markup format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidPattern indicates a grammar finding carries a pattern
	// that cannot be compiled. It is fatal to the whole annotate call.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrAnalysisUnavailable indicates no grammar checker or AI detector
	// is configured, so findings must be supplied by the caller.
	ErrAnalysisUnavailable = errors.New("analysis service unavailable")

	// ErrRateLimited indicates the analysis API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// PatternError reports the grammar finding whose pattern failed to compile.
type PatternError struct {
	// Index is the position of the finding in the findings list.
	Index int

	// Pattern is the finding's raw error value.
	Pattern string

	// Err is the underlying compilation error.
	Err error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("finding %d: invalid pattern %q: %v", e.Index, e.Pattern, e.Err)
}

// Unwrap returns the compilation error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrInvalidPattern.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}
