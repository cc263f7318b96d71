package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/skosread/document/triple"
)

func tr(s, p string, o triple.Term) triple.Triple {
	return triple.Triple{Subject: triple.IRI(s), Predicate: triple.IRI(p), Object: o}
}

func fixture() []triple.Triple {
	return []triple.Triple{
		tr("http://example.org/scheme", rdfType, triple.IRI(schemeClass)),
		tr("http://example.org/scheme", hasTopConcept, triple.IRI("http://example.org/animal")),
		tr("http://example.org/cat", skosNS+"prefLabel", triple.Literal("cat", "en")),
		tr("http://example.org/cat", rdfType, triple.IRI(conceptClass)),
		tr("http://example.org/cat", skosNS+"broader", triple.IRI("http://example.org/animal")),
		tr("http://example.org/cat", skosNS+"altLabel", triple.Blank("xl1")),
		tr("http://example.org/cat", skosNS+"prefLabel", triple.Literal("chat", "fr")),
		tr("http://example.org/cat", inScheme, triple.IRI("http://example.org/scheme")),
		tr("http://example.org/animal", rdfType, triple.IRI(conceptClass)),
		tr("http://example.org/stray", skosNS+"prefLabel", triple.Literal("stray", "en")),
	}
}

func TestFromTriples(t *testing.T) {
	d := FromTriples(fixture())

	concepts := d.SKOSConcepts()
	require.Len(t, concepts, 2)
	assert.Equal(t, "http://example.org/cat", concepts[0].URI())
	assert.Equal(t, "http://example.org/animal", concepts[1].URI())

	schemes := d.SKOSConceptSchemes()
	require.Len(t, schemes, 1)
	assert.Equal(t, "http://example.org/scheme", schemes[0].URI())
}

func TestAnnotationsByURI(t *testing.T) {
	cat := FromTriples(fixture()).SKOSConcepts()[0]

	prefs := cat.AnnotationsByURI(skosNS + "prefLabel")
	require.Len(t, prefs, 2)
	lit, ok := prefs[1].AnnotationValueAsConstant()
	require.True(t, ok)
	assert.Equal(t, Literal{Lexical: "chat", Lang: "fr"}, lit)
	assert.True(t, prefs[1].IsAnnotationByConstant())

	broader := cat.AnnotationsByURI(skosNS + "broader")
	require.Len(t, broader, 1)
	uri, ok := broader[0].AnnotationValue()
	require.True(t, ok)
	assert.Equal(t, "http://example.org/animal", uri)

	alt := cat.AnnotationsByURI(skosNS + "altLabel")
	require.Len(t, alt, 1)
	assert.False(t, alt[0].IsAnnotationByConstant())
	assert.False(t, alt[0].IsAnnotationByEntity())
	node, ok := alt[0].AnonymousNode()
	require.True(t, ok)
	assert.Equal(t, "xl1", node)

	assert.Equal(t, []string{
		skosNS + "prefLabel",
		skosNS + "broader",
		skosNS + "altLabel",
		inScheme,
	}, cat.AnnotationURIs())
}

func TestConceptsInScheme(t *testing.T) {
	d := FromTriples(fixture())

	members := d.ConceptsInScheme("http://example.org/scheme")
	require.Len(t, members, 2)
	assert.Equal(t, "http://example.org/cat", members[0].URI())
	assert.Equal(t, "http://example.org/animal", members[1].URI())

	assert.Empty(t, d.ConceptsInScheme("http://example.org/other"))
}

func TestEmptyDataset(t *testing.T) {
	d := FromTriples(nil)
	assert.Empty(t, d.SKOSConcepts())
	assert.Empty(t, d.SKOSConceptSchemes())
}

func TestAnonymousConcepts(t *testing.T) {
	d := FromTriples([]triple.Triple{
		{Subject: triple.Blank("b1"), Predicate: triple.IRI(rdfType), Object: triple.IRI(conceptClass)},
		{Subject: triple.Blank("b1"), Predicate: triple.IRI(skosNS + "prefLabel"), Object: triple.Literal("ghost", "en")},
		{Subject: triple.Blank("b2"), Predicate: triple.IRI(rdfType), Object: triple.IRI(schemeClass)},
	})

	assert.Equal(t, []string{"b1"}, d.AnonymousConcepts())
	assert.Empty(t, d.SKOSConcepts())
}
