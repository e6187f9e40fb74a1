package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a passage is empty after normalization.
	ErrEmptyInput = errors.New("empty input")
	// ErrResourceUnavailable is returned when a stopword list, lexicon or
	// other required resource is not loaded.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrNotFound is returned by a Lexicon that has no sense for a word.
	ErrNotFound = errors.New("not found")
)

// ExternalServiceError reports a failed call to the generative text service.
type ExternalServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ExternalServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
