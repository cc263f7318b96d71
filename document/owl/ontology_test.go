package owl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/skosread/document/triple"
)

const (
	skosNS  = "http://www.w3.org/2004/02/skos/core#"
	concept = skosNS + "Concept"
)

func tr(s, p string, o triple.Term) triple.Triple {
	return triple.Triple{Subject: triple.IRI(s), Predicate: triple.IRI(p), Object: o}
}

func TestClassAssertions(t *testing.T) {
	o := FromTriples([]triple.Triple{
		tr("http://example.org/vocab", rdfType, triple.IRI(owlOntology)),
		tr("http://example.org/cat", rdfType, triple.IRI(concept)),
		tr("http://example.org/cat", rdfType, triple.IRI(owlNS+"NamedIndividual")),
		{Subject: triple.Blank("b0"), Predicate: triple.IRI(rdfType), Object: triple.IRI(concept)},
		tr("http://example.org/dog", rdfType, triple.IRI(concept)),
	})

	assert.Equal(t, IRI("http://example.org/vocab"), o.IRI())

	axioms := o.ClassAssertionAxioms(IRI(concept))
	require.Len(t, axioms, 3)
	assert.Equal(t, IRI("http://example.org/cat"), axioms[0].Individual.IRI)
	assert.False(t, axioms[1].Individual.IsNamed())
	assert.Equal(t, "b0", axioms[1].Individual.NodeID)
	assert.Equal(t, IRI("http://example.org/dog"), axioms[2].Individual.IRI)

	assert.Empty(t, o.ClassAssertionAxioms(IRI(skosNS+"ConceptScheme")))
}

func TestUndeclaredPropertiesBecomeAnnotations(t *testing.T) {
	o := FromTriples([]triple.Triple{
		tr("http://example.org/cat", skosNS+"prefLabel", triple.Literal("cat", "en")),
		tr("http://example.org/cat", skosNS+"broader", triple.IRI("http://example.org/animal")),
		tr("http://example.org/cat", skosNS+"related", triple.Blank("x")),
	})

	anns := o.AnnotationAssertionAxioms(IRI("http://example.org/cat"))
	require.Len(t, anns, 3)
	assert.Equal(t, Literal{Lexical: "cat", Lang: "en"}, anns[0].Value)
	assert.Equal(t, IRI("http://example.org/animal"), anns[1].Value)
	assert.Equal(t, AnonymousIndividual{NodeID: "x"}, anns[2].Value)
}

func TestDeclaredPropertiesBecomePropertyAssertions(t *testing.T) {
	o := FromTriples([]triple.Triple{
		tr("http://example.org/cat", skosNS+"broader", triple.IRI("http://example.org/animal")),
		tr("http://example.org/cat", skosNS+"notation", triple.Literal("C1", "")),
		tr(skosNS+"broader", rdfType, triple.IRI(owlObjectProperty)),
		tr(skosNS+"notation", rdfType, triple.IRI(owlDatatypeProperty)),
	})

	kind, ok := o.Declaration(IRI(skosNS + "broader"))
	require.True(t, ok)
	assert.Equal(t, EntityObjectProperty, kind)

	axioms := o.ReferencingAxioms(Individual{IRI: "http://example.org/cat"})
	require.Len(t, axioms, 2)

	obj, ok := axioms[0].(ObjectPropertyAssertionAxiom)
	require.True(t, ok)
	assert.Equal(t, IRI("http://example.org/animal"), obj.Object.IRI)

	data, ok := axioms[1].(DataPropertyAssertionAxiom)
	require.True(t, ok)
	assert.Equal(t, "C1", data.Value.Lexical)

	assert.Empty(t, o.AnnotationAssertionAxioms(IRI("http://example.org/cat")))
	assert.Equal(t, 4, o.AxiomCount())
}

func TestLiteralForObjectPropertyFallsBackToAnnotation(t *testing.T) {
	o := FromTriples([]triple.Triple{
		tr(skosNS+"broader", rdfType, triple.IRI(owlObjectProperty)),
		tr("http://example.org/cat", skosNS+"broader", triple.Literal("animal", "")),
	})

	anns := o.AnnotationAssertionAxioms(IRI("http://example.org/cat"))
	require.Len(t, anns, 1)
	assert.IsType(t, Literal{}, anns[0].Value)
}
