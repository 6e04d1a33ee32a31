package domain

import "errors"

var (
	// ErrEmptyTerm signals a search term that is empty after sanitization.
	// Callers treat it as a boundary no-op: the builder is never invoked.
	ErrEmptyTerm = errors.New("empty search term")
)
