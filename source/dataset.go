package source

import (
	"iter"

	"github.com/c360studio/skosread/concept"
	"github.com/c360studio/skosread/document"
	"github.com/c360studio/skosread/document/dataset"
	"github.com/c360studio/skosread/vocabulary/skos"
)

// DatasetAdapter reads a SKOS annotation dataset.
type DatasetAdapter struct {
	dataset *dataset.Dataset
	opts    options
}

// NewDatasetAdapter wraps a *dataset.Dataset handle.
func NewDatasetAdapter(handle any, opts ...Option) (*DatasetAdapter, error) {
	d, ok := handle.(*dataset.Dataset)
	if !ok || d == nil {
		return nil, unsupported(document.BackendDataset, handle)
	}
	return &DatasetAdapter{dataset: d, opts: buildOptions(document.BackendDataset, opts)}, nil
}

// Backend implements Adapter.
func (a *DatasetAdapter) Backend() document.Backend {
	return document.BackendDataset
}

// Statements implements Adapter. Concepts are read in declaration order and
// their annotations in document order. Anonymous concepts are reported
// before any statement is emitted. Concept schemes are only logged.
func (a *DatasetAdapter) Statements() iter.Seq2[concept.RawStatement, error] {
	return func(yield func(concept.RawStatement, error) bool) {
		for _, scheme := range a.dataset.SKOSConceptSchemes() {
			a.opts.logger.Debug("Found concept scheme",
				"scheme", scheme.URI(),
				"concepts", len(a.dataset.ConceptsInScheme(scheme.URI())))
		}

		e := &emitter{yield: yield, report: a.opts.diagnostics}
		for _, node := range a.dataset.AnonymousConcepts() {
			e.skip("_:"+node, skos.RDFType, ReasonBlankNode, skos.Concept)
		}
		for _, c := range a.dataset.SKOSConcepts() {
			uri := c.URI()
			if !e.subject(uri) {
				if e.stopped {
					return
				}
				continue
			}

			for _, ann := range c.Annotations() {
				prop, ok := skos.Lookup(ann.URI)
				if !ok {
					continue
				}
				if !a.emitAnnotation(e, uri, prop, ann) {
					return
				}
			}
		}
	}
}

func (a *DatasetAdapter) emitAnnotation(e *emitter, subject string, prop skos.Property, ann dataset.Annotation) bool {
	if lit, ok := ann.AnnotationValueAsConstant(); ok {
		return e.literal(subject, prop, lit.Lexical, lit.Lang)
	}
	if target, ok := ann.AnnotationValue(); ok {
		return e.reference(subject, prop, target)
	}
	if node, ok := ann.AnonymousNode(); ok {
		e.skip(subject, prop.IRI, ReasonBlankNode, "_:"+node)
	}
	return true
}
