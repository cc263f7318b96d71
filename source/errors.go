package source

import (
	"fmt"

	"github.com/c360studio/skosread/document"
)

// UnsupportedBackendError reports a handle whose shape does not match the
// backend it was given to.
type UnsupportedBackendError struct {
	// Backend is the backend that was requested, or empty when the handle
	// matched none.
	Backend document.Backend

	// Handle is the Go type of the rejected handle.
	Handle string
}

// Error implements the error interface.
func (e *UnsupportedBackendError) Error() string {
	if e.Backend == "" {
		return fmt.Sprintf("unsupported backend handle %s", e.Handle)
	}
	return fmt.Sprintf("%s backend cannot read handle %s", e.Backend, e.Handle)
}

// Is makes the error match document.ErrDocumentLoad, since a document whose
// handle cannot be adapted was never usefully loaded.
func (e *UnsupportedBackendError) Is(target error) bool {
	return target == document.ErrDocumentLoad
}

func unsupported(backend document.Backend, handle any) error {
	return &UnsupportedBackendError{Backend: backend, Handle: fmt.Sprintf("%T", handle)}
}

// MalformedReason classifies a skipped value.
type MalformedReason string

// Reasons a value is skipped.
const (
	ReasonBlankNode           MalformedReason = "blank_node"
	ReasonAnonymousIndividual MalformedReason = "anonymous_individual"
	ReasonExpectedLiteral     MalformedReason = "expected_literal"
	ReasonExpectedReference   MalformedReason = "expected_reference"
	ReasonInvalidURI          MalformedReason = "invalid_uri"
)

// MalformedStatement describes a recognized statement that was skipped
// because its value has the wrong shape. It is a warning, never an error.
type MalformedStatement struct {
	Subject   string
	Predicate string
	Reason    MalformedReason
	Value     string
}

// String renders the warning for logs.
func (m MalformedStatement) String() string {
	return fmt.Sprintf("%s %s: %s (%s)", m.Subject, m.Predicate, m.Reason, m.Value)
}
