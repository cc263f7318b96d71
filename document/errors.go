package document

import (
	"errors"
	"fmt"
)

// ErrDocumentLoad matches every error that prevents a document from being
// turned into a backend handle.
var ErrDocumentLoad = errors.New("document load failed")

// ErrUnknownBackend is returned for backend names that are not registered.
var ErrUnknownBackend = errors.New("unknown backend")

// LoadReason classifies a LoadError.
type LoadReason string

// Load failure reasons.
const (
	ReasonNotFound          LoadReason = "not_found"
	ReasonUnreadable        LoadReason = "unreadable"
	ReasonUnsupportedFormat LoadReason = "unsupported_format"
	ReasonMalformedSyntax   LoadReason = "malformed_syntax"
)

// LoadError reports a document that could not be loaded. It is fatal for
// that document; loading is never retried because the input is static.
type LoadError struct {
	Path   string
	Reason LoadReason
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes every LoadError match ErrDocumentLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrDocumentLoad
}

func loadError(path string, reason LoadReason, err error) *LoadError {
	return &LoadError{Path: path, Reason: reason, Err: err}
}
