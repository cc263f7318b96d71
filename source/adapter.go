package source

import (
	"iter"
	"log/slog"
	"net/url"

	"github.com/c360studio/skosread/concept"
	"github.com/c360studio/skosread/document"
	"github.com/c360studio/skosread/document/dataset"
	"github.com/c360studio/skosread/document/owl"
	"github.com/c360studio/skosread/document/rdfgraph"
	"github.com/c360studio/skosread/vocabulary/skos"
)

// Adapter yields the SKOS statements held by one backend handle.
type Adapter interface {
	// Backend returns the backend the adapter reads.
	Backend() document.Backend

	// Statements returns a finite, restartable statement sequence. The
	// error element is always nil for the built-in backends.
	Statements() iter.Seq2[concept.RawStatement, error]
}

// Option configures an adapter.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	diagnostics func(MalformedStatement)
}

// WithLogger sets the logger used for debug output and the default
// diagnostics sink.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDiagnostics replaces the default sink for skipped values.
func WithDiagnostics(sink func(MalformedStatement)) Option {
	return func(o *options) {
		o.diagnostics = sink
	}
}

func buildOptions(backend document.Backend, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	o.logger = o.logger.With("backend", backend)
	if o.diagnostics == nil {
		logger := o.logger
		o.diagnostics = func(m MalformedStatement) {
			logger.Warn("Skipped malformed statement",
				"subject", m.Subject,
				"predicate", m.Predicate,
				"reason", m.Reason,
				"value", m.Value)
		}
	}
	return o
}

// New returns the adapter matching the handle's shape.
func New(handle any, opts ...Option) (Adapter, error) {
	switch handle.(type) {
	case *rdfgraph.Graph:
		return adapt[*GraphAdapter](NewGraphAdapter(handle, opts...))
	case *owl.Ontology:
		return adapt[*OntologyAdapter](NewOntologyAdapter(handle, opts...))
	case *dataset.Dataset:
		return adapt[*DatasetAdapter](NewDatasetAdapter(handle, opts...))
	default:
		return nil, unsupported("", handle)
	}
}

// ForDocument returns the adapter for a loaded document, checking that the
// handle matches the document's backend.
func ForDocument(doc *document.Document, opts ...Option) (Adapter, error) {
	switch doc.Backend {
	case document.BackendGraph:
		return adapt[*GraphAdapter](NewGraphAdapter(doc.Handle, opts...))
	case document.BackendOntology:
		return adapt[*OntologyAdapter](NewOntologyAdapter(doc.Handle, opts...))
	case document.BackendDataset:
		return adapt[*DatasetAdapter](NewDatasetAdapter(doc.Handle, opts...))
	default:
		return nil, unsupported(doc.Backend, doc.Handle)
	}
}

func adapt[A Adapter](a A, err error) (Adapter, error) {
	if err != nil {
		return nil, err
	}
	return a, nil
}

// emitter applies the shared value rules and stops when the consumer does.
type emitter struct {
	yield   func(concept.RawStatement, error) bool
	report  func(MalformedStatement)
	stopped bool
}

func (e *emitter) emit(st concept.RawStatement) bool {
	if e.stopped {
		return false
	}
	if !e.yield(st, nil) {
		e.stopped = true
	}
	return !e.stopped
}

func (e *emitter) skip(subject, predicate string, reason MalformedReason, value string) {
	e.report(MalformedStatement{Subject: subject, Predicate: predicate, Reason: reason, Value: value})
}

// literal emits a literal value for prop, or reports it when prop expects
// a concept reference.
func (e *emitter) literal(subject string, prop skos.Property, text, lang string) bool {
	if prop.Range != skos.RangeLiteral {
		e.skip(subject, prop.IRI, ReasonExpectedReference, text)
		return true
	}
	return e.emit(concept.Literal(subject, prop.IRI, text, lang))
}

// reference emits a URI value for prop, or reports it when prop expects a
// literal or the URI is not absolute.
func (e *emitter) reference(subject string, prop skos.Property, target string) bool {
	if prop.Range != skos.RangeConcept {
		e.skip(subject, prop.IRI, ReasonExpectedLiteral, target)
		return true
	}
	if !isAbsoluteURI(target) {
		e.skip(subject, prop.IRI, ReasonInvalidURI, target)
		return true
	}
	return e.emit(concept.Reference(subject, prop.IRI, target))
}

// subject emits the typing statement for a concept URI, or reports it when
// the URI is not absolute.
func (e *emitter) subject(uri string) bool {
	if !isAbsoluteURI(uri) {
		e.skip(uri, skos.RDFType, ReasonInvalidURI, uri)
		return false
	}
	return e.emit(concept.Declaration(uri))
}

func isAbsoluteURI(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}
