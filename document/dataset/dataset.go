// Package dataset is the annotation-style document backend. A vocabulary
// is held as SKOS concept schemes and concepts, each entity carrying the
// annotations asserted on it, keyed by annotation property URI.
package dataset

import (
	"github.com/c360studio/skosread/document/triple"
)

const (
	skosNS        = "http://www.w3.org/2004/02/skos/core#"
	rdfType       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	conceptClass  = skosNS + "Concept"
	schemeClass   = skosNS + "ConceptScheme"
	inScheme      = skosNS + "inScheme"
	hasTopConcept = skosNS + "hasTopConcept"
)

// Literal is a constant annotation value.
type Literal struct {
	Lexical  string
	Lang     string
	Datatype string
}

// Annotation is one annotation asserted on a SKOS entity. Its value is
// either a constant (literal), an entity (URI) or an anonymous node.
type Annotation struct {
	URI string

	constant *Literal
	entity   string
	nodeID   string
}

// IsAnnotationByConstant reports whether the value is a literal.
func (a Annotation) IsAnnotationByConstant() bool {
	return a.constant != nil
}

// IsAnnotationByEntity reports whether the value is a named entity.
func (a Annotation) IsAnnotationByEntity() bool {
	return a.entity != ""
}

// AnnotationValueAsConstant returns the literal value.
func (a Annotation) AnnotationValueAsConstant() (Literal, bool) {
	if a.constant == nil {
		return Literal{}, false
	}
	return *a.constant, true
}

// AnnotationValue returns the entity URI value.
func (a Annotation) AnnotationValue() (string, bool) {
	return a.entity, a.entity != ""
}

// AnonymousNode returns the blank node label when the value is anonymous.
func (a Annotation) AnonymousNode() (string, bool) {
	return a.nodeID, a.nodeID != ""
}

// Entity is a named SKOS resource with its annotations.
type Entity struct {
	uri         string
	annotations []Annotation
}

// URI returns the entity URI.
func (e *Entity) URI() string {
	return e.uri
}

// Annotations returns all annotations in document order.
func (e *Entity) Annotations() []Annotation {
	out := make([]Annotation, len(e.annotations))
	copy(out, e.annotations)
	return out
}

// AnnotationsByURI returns the annotations asserted with property uri.
func (e *Entity) AnnotationsByURI(uri string) []Annotation {
	var out []Annotation
	for _, a := range e.annotations {
		if a.URI == uri {
			out = append(out, a)
		}
	}
	return out
}

// AnnotationURIs returns the distinct annotation property URIs on the
// entity, in the order they first appear.
func (e *Entity) AnnotationURIs() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range e.annotations {
		if _, ok := seen[a.URI]; ok {
			continue
		}
		seen[a.URI] = struct{}{}
		out = append(out, a.URI)
	}
	return out
}

// Concept is a SKOS concept.
type Concept struct {
	Entity
}

// ConceptScheme is a SKOS concept scheme.
type ConceptScheme struct {
	Entity
}

// Dataset holds the concept schemes and concepts of one document.
type Dataset struct {
	schemes   []*ConceptScheme
	concepts  []*Concept
	entities  map[string]*Entity
	anonymous []string
}

// FromTriples builds a dataset. Resources typed skos:Concept or
// skos:ConceptScheme become entities; every statement whose subject is one
// of those entities becomes an annotation on it.
func FromTriples(triples []triple.Triple) *Dataset {
	d := &Dataset{entities: make(map[string]*Entity)}

	blank := make(map[string]struct{})
	for _, t := range triples {
		if t.Predicate.Value != rdfType || !t.Object.IsIRI() {
			continue
		}
		if t.Subject.IsBlank() {
			// Anonymous concepts cannot carry annotations; only their
			// node IDs are kept.
			if _, ok := blank[t.Subject.Value]; !ok && t.Object.Value == conceptClass {
				blank[t.Subject.Value] = struct{}{}
				d.anonymous = append(d.anonymous, t.Subject.Value)
			}
			continue
		}
		if !t.Subject.IsIRI() {
			continue
		}
		uri := t.Subject.Value
		if _, ok := d.entities[uri]; ok {
			continue
		}
		switch t.Object.Value {
		case conceptClass:
			c := &Concept{Entity: Entity{uri: uri}}
			d.concepts = append(d.concepts, c)
			d.entities[uri] = &c.Entity
		case schemeClass:
			s := &ConceptScheme{Entity: Entity{uri: uri}}
			d.schemes = append(d.schemes, s)
			d.entities[uri] = &s.Entity
		}
	}

	for _, t := range triples {
		if !t.Subject.IsIRI() || t.Predicate.Value == rdfType {
			continue
		}
		e, ok := d.entities[t.Subject.Value]
		if !ok {
			continue
		}
		e.annotations = append(e.annotations, annotation(t))
	}
	return d
}

func annotation(t triple.Triple) Annotation {
	a := Annotation{URI: t.Predicate.Value}
	switch t.Object.Kind {
	case triple.KindLiteral:
		a.constant = &Literal{Lexical: t.Object.Value, Lang: t.Object.Lang, Datatype: t.Object.Datatype}
	case triple.KindIRI:
		a.entity = t.Object.Value
	case triple.KindBlank:
		a.nodeID = t.Object.Value
	}
	return a
}

// SKOSConcepts returns all concepts in first-declared order.
func (d *Dataset) SKOSConcepts() []*Concept {
	out := make([]*Concept, len(d.concepts))
	copy(out, d.concepts)
	return out
}

// AnonymousConcepts returns the blank node IDs typed skos:Concept, in
// document order.
func (d *Dataset) AnonymousConcepts() []string {
	out := make([]string, len(d.anonymous))
	copy(out, d.anonymous)
	return out
}

// SKOSConceptSchemes returns all concept schemes in first-declared order.
func (d *Dataset) SKOSConceptSchemes() []*ConceptScheme {
	out := make([]*ConceptScheme, len(d.schemes))
	copy(out, d.schemes)
	return out
}

// ConceptsInScheme returns the concepts linked to scheme by skos:inScheme
// or by the scheme's skos:hasTopConcept.
func (d *Dataset) ConceptsInScheme(scheme string) []*Concept {
	members := make(map[string]struct{})
	if e, ok := d.entities[scheme]; ok {
		for _, a := range e.AnnotationsByURI(hasTopConcept) {
			if uri, ok := a.AnnotationValue(); ok {
				members[uri] = struct{}{}
			}
		}
	}

	var out []*Concept
	for _, c := range d.concepts {
		if _, ok := members[c.uri]; ok {
			out = append(out, c)
			continue
		}
		for _, a := range c.AnnotationsByURI(inScheme) {
			if uri, ok := a.AnnotationValue(); ok && uri == scheme {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
