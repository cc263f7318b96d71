// Package owl is the ontology-axiom document backend. A vocabulary document
// is read into OWL-style axioms: class assertions for typed individuals,
// and annotation, object-property or data-property assertions for the
// remaining statements, depending on how the document declares each
// property.
package owl

import (
	"strings"

	"github.com/c360studio/skosread/document/triple"
)

// IRI identifies an OWL entity.
type IRI string

// Builtin namespaces whose rdf:type objects are declarations, not classes.
const (
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfsNS = "http://www.w3.org/2000/01/rdf-schema#"
	owlNS  = "http://www.w3.org/2002/07/owl#"

	rdfType             = rdfNS + "type"
	owlOntology         = owlNS + "Ontology"
	owlObjectProperty   = owlNS + "ObjectProperty"
	owlDatatypeProperty = owlNS + "DatatypeProperty"
	owlAnnotationProp   = owlNS + "AnnotationProperty"
)

// EntityKind is the declared kind of an IRI.
type EntityKind int

// Declared entity kinds.
const (
	EntityObjectProperty EntityKind = iota + 1
	EntityDataProperty
	EntityAnnotationProperty
)

// Individual is the subject or object of an assertion. Exactly one of IRI
// and NodeID is set.
type Individual struct {
	IRI    IRI
	NodeID string
}

// IsNamed reports whether the individual has an IRI.
func (i Individual) IsNamed() bool {
	return i.IRI != ""
}

// AnnotationValue is the value of an annotation: an IRI, a Literal or an
// AnonymousIndividual.
type AnnotationValue interface {
	annotationValue()
}

// Literal is a lexical value.
type Literal struct {
	Lexical  string
	Lang     string
	Datatype string
}

// AnonymousIndividual is a blank node used as a value.
type AnonymousIndividual struct {
	NodeID string
}

func (IRI) annotationValue()                 {}
func (Literal) annotationValue()             {}
func (AnonymousIndividual) annotationValue() {}

// Axiom is any assertion held by an Ontology.
type Axiom interface {
	axiom()
}

// ClassAssertionAxiom states that an individual belongs to a class.
type ClassAssertionAxiom struct {
	Class      IRI
	Individual Individual
}

// AnnotationAssertionAxiom attaches an annotation value to an IRI.
type AnnotationAssertionAxiom struct {
	Subject  IRI
	Property IRI
	Value    AnnotationValue
}

// ObjectPropertyAssertionAxiom links two individuals through an object property.
type ObjectPropertyAssertionAxiom struct {
	Property IRI
	Subject  Individual
	Object   Individual
}

// DataPropertyAssertionAxiom links an individual to a literal through a data property.
type DataPropertyAssertionAxiom struct {
	Property IRI
	Subject  Individual
	Value    Literal
}

func (ClassAssertionAxiom) axiom()          {}
func (AnnotationAssertionAxiom) axiom()     {}
func (ObjectPropertyAssertionAxiom) axiom() {}
func (DataPropertyAssertionAxiom) axiom()   {}

// Ontology is a set of axioms read from one document.
type Ontology struct {
	iri             IRI
	declarations    map[IRI]EntityKind
	classAssertions []ClassAssertionAxiom
	bySubject       map[string][]Axiom
	axiomCount      int
}

// FromTriples maps RDF triples onto axioms.
//
// Property declarations are read first so that a statement is classified
// by its property's declared kind regardless of where the declaration
// appears. Statements about blank-node subjects are kept only when they
// form class or property assertions.
func FromTriples(triples []triple.Triple) *Ontology {
	o := &Ontology{
		declarations: make(map[IRI]EntityKind),
		bySubject:    make(map[string][]Axiom),
	}

	for _, t := range triples {
		if t.Predicate.Value != rdfType || !t.Object.IsIRI() || !t.Subject.IsIRI() {
			continue
		}
		subject := IRI(t.Subject.Value)
		switch t.Object.Value {
		case owlOntology:
			if o.iri == "" {
				o.iri = subject
			}
		case owlObjectProperty:
			o.declarations[subject] = EntityObjectProperty
		case owlDatatypeProperty:
			o.declarations[subject] = EntityDataProperty
		case owlAnnotationProp:
			o.declarations[subject] = EntityAnnotationProperty
		}
	}

	for _, t := range triples {
		o.addTriple(t)
	}
	return o
}

func (o *Ontology) addTriple(t triple.Triple) {
	subject := individual(t.Subject)
	property := IRI(t.Predicate.Value)

	if t.Predicate.Value == rdfType {
		if !t.Object.IsIRI() || isBuiltin(t.Object.Value) {
			// Declarations are not assertions.
			o.axiomCount++
			return
		}
		ax := ClassAssertionAxiom{Class: IRI(t.Object.Value), Individual: subject}
		o.classAssertions = append(o.classAssertions, ax)
		o.add(subjectKey(subject), ax)
		return
	}

	switch o.declarations[property] {
	case EntityObjectProperty:
		if !t.Object.IsLiteral() {
			o.add(subjectKey(subject), ObjectPropertyAssertionAxiom{
				Property: property,
				Subject:  subject,
				Object:   individual(t.Object),
			})
			return
		}
	case EntityDataProperty:
		if t.Object.IsLiteral() {
			o.add(subjectKey(subject), DataPropertyAssertionAxiom{
				Property: property,
				Subject:  subject,
				Value:    literal(t.Object),
			})
			return
		}
	}

	if !subject.IsNamed() {
		return
	}
	o.add(subjectKey(subject), AnnotationAssertionAxiom{
		Subject:  subject.IRI,
		Property: property,
		Value:    annotationValue(t.Object),
	})
}

func (o *Ontology) add(key string, ax Axiom) {
	o.bySubject[key] = append(o.bySubject[key], ax)
	o.axiomCount++
}

// IRI returns the ontology IRI declared in the document, if any.
func (o *Ontology) IRI() IRI {
	return o.iri
}

// AxiomCount returns the number of axioms read, declarations included.
func (o *Ontology) AxiomCount() int {
	return o.axiomCount
}

// Declaration returns the declared kind of a property IRI.
func (o *Ontology) Declaration(iri IRI) (EntityKind, bool) {
	kind, ok := o.declarations[iri]
	return kind, ok
}

// ClassAssertionAxioms returns the class assertions for class in document order.
func (o *Ontology) ClassAssertionAxioms(class IRI) []ClassAssertionAxiom {
	var out []ClassAssertionAxiom
	for _, ax := range o.classAssertions {
		if ax.Class == class {
			out = append(out, ax)
		}
	}
	return out
}

// AnnotationAssertionAxioms returns the annotation assertions about subject.
func (o *Ontology) AnnotationAssertionAxioms(subject IRI) []AnnotationAssertionAxiom {
	var out []AnnotationAssertionAxiom
	for _, ax := range o.bySubject[subjectKey(Individual{IRI: subject})] {
		if a, ok := ax.(AnnotationAssertionAxiom); ok {
			out = append(out, a)
		}
	}
	return out
}

// ReferencingAxioms returns every axiom whose subject is the given
// individual, in document order.
func (o *Ontology) ReferencingAxioms(subject Individual) []Axiom {
	axioms := o.bySubject[subjectKey(subject)]
	out := make([]Axiom, len(axioms))
	copy(out, axioms)
	return out
}

func individual(t triple.Term) Individual {
	if t.IsBlank() {
		return Individual{NodeID: t.Value}
	}
	return Individual{IRI: IRI(t.Value)}
}

func literal(t triple.Term) Literal {
	return Literal{Lexical: t.Value, Lang: t.Lang, Datatype: t.Datatype}
}

func annotationValue(t triple.Term) AnnotationValue {
	switch t.Kind {
	case triple.KindIRI:
		return IRI(t.Value)
	case triple.KindLiteral:
		return literal(t)
	case triple.KindBlank:
		return AnonymousIndividual{NodeID: t.Value}
	default:
		return nil
	}
}

func subjectKey(i Individual) string {
	if i.IsNamed() {
		return "<" + string(i.IRI) + ">"
	}
	return "_:" + i.NodeID
}

func isBuiltin(iri string) bool {
	return strings.HasPrefix(iri, owlNS) || strings.HasPrefix(iri, rdfsNS) || strings.HasPrefix(iri, rdfNS)
}
