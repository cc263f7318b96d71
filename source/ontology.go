package source

import (
	"iter"

	"github.com/c360studio/skosread/concept"
	"github.com/c360studio/skosread/document"
	"github.com/c360studio/skosread/document/owl"
	"github.com/c360studio/skosread/vocabulary/skos"
)

// OntologyAdapter reads an OWL axiom ontology.
type OntologyAdapter struct {
	ontology *owl.Ontology
	opts     options
}

// NewOntologyAdapter wraps an *owl.Ontology handle.
func NewOntologyAdapter(handle any, opts ...Option) (*OntologyAdapter, error) {
	o, ok := handle.(*owl.Ontology)
	if !ok || o == nil {
		return nil, unsupported(document.BackendOntology, handle)
	}
	return &OntologyAdapter{ontology: o, opts: buildOptions(document.BackendOntology, opts)}, nil
}

// Backend implements Adapter.
func (a *OntologyAdapter) Backend() document.Backend {
	return document.BackendOntology
}

// Statements implements Adapter. Concepts are the named individuals of
// class assertions for skos:Concept. Labels and notes usually arrive as
// annotation assertions; relations arrive as annotation assertions or, when
// the document declares the SKOS relation an owl:ObjectProperty, as object
// property assertions.
func (a *OntologyAdapter) Statements() iter.Seq2[concept.RawStatement, error] {
	return func(yield func(concept.RawStatement, error) bool) {
		e := &emitter{yield: yield, report: a.opts.diagnostics}
		seen := make(map[owl.IRI]struct{})

		for _, ca := range a.ontology.ClassAssertionAxioms(owl.IRI(skos.Concept)) {
			ind := ca.Individual
			if !ind.IsNamed() {
				e.skip("_:"+ind.NodeID, skos.RDFType, ReasonAnonymousIndividual, skos.Concept)
				continue
			}
			if _, ok := seen[ind.IRI]; ok {
				continue
			}
			seen[ind.IRI] = struct{}{}

			uri := string(ind.IRI)
			if !e.subject(uri) {
				if e.stopped {
					return
				}
				continue
			}

			for _, ax := range a.ontology.ReferencingAxioms(ind) {
				if !a.emitAxiom(e, uri, ax) {
					return
				}
			}
		}
	}
}

func (a *OntologyAdapter) emitAxiom(e *emitter, subject string, ax owl.Axiom) bool {
	switch ax := ax.(type) {
	case owl.AnnotationAssertionAxiom:
		prop, ok := skos.Lookup(string(ax.Property))
		if !ok {
			return true
		}
		switch v := ax.Value.(type) {
		case owl.Literal:
			return e.literal(subject, prop, v.Lexical, v.Lang)
		case owl.IRI:
			return e.reference(subject, prop, string(v))
		case owl.AnonymousIndividual:
			e.skip(subject, prop.IRI, ReasonAnonymousIndividual, "_:"+v.NodeID)
		}
	case owl.ObjectPropertyAssertionAxiom:
		prop, ok := skos.Lookup(string(ax.Property))
		if !ok {
			return true
		}
		if !ax.Object.IsNamed() {
			e.skip(subject, prop.IRI, ReasonAnonymousIndividual, "_:"+ax.Object.NodeID)
			return true
		}
		return e.reference(subject, prop, string(ax.Object.IRI))
	case owl.DataPropertyAssertionAxiom:
		prop, ok := skos.Lookup(string(ax.Property))
		if !ok {
			return true
		}
		return e.literal(subject, prop, ax.Value.Lexical, ax.Value.Lang)
	}
	return true
}
