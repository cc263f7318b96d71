package storage

import "errors"

// Common storage errors.
var (
	// ErrNotFound is returned when a concept is not in the bucket.
	ErrNotFound = errors.New("concept not found")
)
