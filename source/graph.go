package source

import (
	"iter"

	"github.com/c360studio/skosread/concept"
	"github.com/c360studio/skosread/document"
	"github.com/c360studio/skosread/document/rdfgraph"
	"github.com/c360studio/skosread/document/triple"
	"github.com/c360studio/skosread/vocabulary/skos"
)

// GraphAdapter reads an RDF statement graph.
type GraphAdapter struct {
	graph *rdfgraph.Graph
	opts  options
}

// NewGraphAdapter wraps an *rdfgraph.Graph handle.
func NewGraphAdapter(handle any, opts ...Option) (*GraphAdapter, error) {
	g, ok := handle.(*rdfgraph.Graph)
	if !ok || g == nil {
		return nil, unsupported(document.BackendGraph, handle)
	}
	return &GraphAdapter{graph: g, opts: buildOptions(document.BackendGraph, opts)}, nil
}

// Backend implements Adapter.
func (a *GraphAdapter) Backend() document.Backend {
	return document.BackendGraph
}

// Statements implements Adapter. Concepts are the subjects of
// rdf:type skos:Concept statements; each concept's statements are read in
// document order.
func (a *GraphAdapter) Statements() iter.Seq2[concept.RawStatement, error] {
	return func(yield func(concept.RawStatement, error) bool) {
		e := &emitter{yield: yield, report: a.opts.diagnostics}

		for _, subject := range a.graph.InstancesOf(skos.Concept) {
			if subject.IsBlank() {
				e.skip("_:"+subject.Value, skos.RDFType, ReasonBlankNode, skos.Concept)
				continue
			}
			uri := subject.Value
			if !e.subject(uri) {
				if e.stopped {
					return
				}
				continue
			}

			for _, t := range a.graph.ListProperties(subject) {
				prop, ok := skos.Lookup(t.Predicate.Value)
				if !ok {
					continue
				}
				if !a.emitObject(e, uri, prop, t.Object) {
					return
				}
			}
		}
	}
}

func (a *GraphAdapter) emitObject(e *emitter, subject string, prop skos.Property, object triple.Term) bool {
	switch object.Kind {
	case triple.KindLiteral:
		return e.literal(subject, prop, object.Value, object.Lang)
	case triple.KindIRI:
		return e.reference(subject, prop, object.Value)
	case triple.KindBlank:
		e.skip(subject, prop.IRI, ReasonBlankNode, "_:"+object.Value)
		return true
	default:
		return true
	}
}
