package skos

import "github.com/c360studio/semstreams/vocabulary"

// Namespace is the SKOS core namespace.
const Namespace = "http://www.w3.org/2004/02/skos/core#"

// RDF and OWL IRIs needed to interpret vocabulary documents.
const (
	// RDFType relates a resource to its class.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// OWLObjectProperty declares a property whose values are individuals.
	OWLObjectProperty = "http://www.w3.org/2002/07/owl#ObjectProperty"

	// OWLDatatypeProperty declares a property whose values are literals.
	OWLDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"

	// OWLAnnotationProperty declares an annotation property.
	OWLAnnotationProperty = "http://www.w3.org/2002/07/owl#AnnotationProperty"

	// OWLNamedIndividual declares a named individual.
	OWLNamedIndividual = "http://www.w3.org/2002/07/owl#NamedIndividual"

	// OWLClass declares a class.
	OWLClass = "http://www.w3.org/2002/07/owl#Class"
)

// SKOS class IRIs.
const (
	// Concept is the class of SKOS concepts.
	Concept = Namespace + "Concept"

	// ConceptScheme is the class of SKOS concept schemes.
	ConceptScheme = Namespace + "ConceptScheme"
)

// SKOS property IRIs.
const (
	// PrefLabel is the preferred lexical label of a concept.
	PrefLabel = vocabulary.SkosPrefLabel

	// AltLabel is an alternative lexical label of a concept.
	AltLabel = vocabulary.SkosAltLabel

	// ScopeNote documents the intended meaning or use of a concept.
	ScopeNote = Namespace + "scopeNote"

	// Definition is a formal explanation of a concept.
	Definition = Namespace + "definition"

	// Broader links a concept to a more general concept.
	Broader = vocabulary.SkosBroader

	// Narrower links a concept to a more specific concept.
	Narrower = vocabulary.SkosNarrower

	// Related links a concept to an associated concept.
	Related = vocabulary.SkosRelated

	// InScheme links a resource to a concept scheme.
	InScheme = Namespace + "inScheme"
)
