package concept

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/skosread/vocabulary/skos"
)

const (
	animal = "http://example.org/animal"
	cat    = "http://example.org/cat"
	chat   = "http://example.org/chat"
)

func seqOf(statements ...RawStatement) iter.Seq2[RawStatement, error] {
	return func(yield func(RawStatement, error) bool) {
		for _, st := range statements {
			if !yield(st, nil) {
				return
			}
		}
	}
}

func catScenario() []RawStatement {
	return []RawStatement{
		Declaration(cat),
		Literal(cat, skos.PrefLabel, "Cat", "en"),
		Literal(cat, skos.PrefLabel, "Chat", "fr"),
		Literal(cat, skos.AltLabel, "Kitty", "en"),
		Literal(cat, skos.ScopeNote, "Domestic cats only", "en"),
		Literal(cat, skos.Definition, "A small carnivorous mammal", "en"),
		Reference(cat, skos.Broader, animal),
		Reference(cat, skos.Related, chat),
		Declaration(animal),
		Literal(animal, skos.PrefLabel, "Animal", "en"),
		Reference(animal, skos.Narrower, cat),
	}
}

func TestNormalize_CatScenario(t *testing.T) {
	g, err := Normalize(seqOf(catScenario()...))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []string{cat, animal}, g.URIs())

	c, ok := g.Concept(cat)
	require.True(t, ok)
	assert.Equal(t, cat, c.URI())
	assert.Equal(t, []LangString{{Lang: "en", Text: "Cat"}, {Lang: "fr", Text: "Chat"}}, c.PrefLabels())
	assert.Equal(t, []LangString{{Lang: "en", Text: "Kitty"}}, c.AltLabels())
	assert.Equal(t, []LangString{{Lang: "en", Text: "Domestic cats only"}}, c.ScopeNotes())
	assert.Equal(t, []LangString{{Lang: "en", Text: "A small carnivorous mammal"}}, c.Definitions())
	assert.Equal(t, []string{animal}, c.Broader())
	assert.Empty(t, c.Narrower())
	assert.Equal(t, []string{chat}, c.Related())

	a, ok := g.Concept(animal)
	require.True(t, ok)
	assert.Equal(t, []string{cat}, a.Narrower())
	assert.Empty(t, a.Broader())

	// Relation targets never become nodes.
	assert.False(t, g.Has(chat))
	assert.Equal(t, []string{chat}, g.Dangling())
}

func TestNormalize_Empty(t *testing.T) {
	g, err := Normalize(seqOf())
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Concepts())
	assert.Empty(t, g.TopConcepts())
}

func TestNormalize_DeclarationOnly(t *testing.T) {
	g, err := Normalize(seqOf(Declaration(cat)))
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())

	c, _ := g.Concept(cat)
	assert.Empty(t, c.PrefLabels())
	assert.Empty(t, c.Broader())
}

func TestNormalize_LabelsAreMultisets(t *testing.T) {
	g, err := Normalize(seqOf(
		Literal(cat, skos.PrefLabel, "Cat", "en"),
		Literal(cat, skos.PrefLabel, "Cat", "en"),
		Literal(cat, skos.PrefLabel, "Housecat", "en"),
		Literal(cat, skos.AltLabel, "Puss", ""),
	))
	require.NoError(t, err)

	c, _ := g.Concept(cat)
	assert.Len(t, c.PrefLabels(), 3)
	assert.Equal(t, []LangString{{Text: "Puss"}}, c.AltLabels())

	text, ok := c.PrefLabel("en")
	assert.True(t, ok)
	assert.Equal(t, "Cat", text)
	_, ok = c.PrefLabel("de")
	assert.False(t, ok)
}

func TestNormalize_RelationsAreSets(t *testing.T) {
	g, err := Normalize(seqOf(
		Reference(cat, skos.Broader, animal),
		Reference(cat, skos.Broader, "http://example.org/mammal"),
		Reference(cat, skos.Broader, animal),
	))
	require.NoError(t, err)

	c, _ := g.Concept(cat)
	assert.Equal(t, []string{animal, "http://example.org/mammal"}, c.Broader())
	assert.True(t, c.HasBroader(animal))
	assert.False(t, c.HasNarrower(animal))
}

func TestNormalize_SelfRelationKept(t *testing.T) {
	g, err := Normalize(seqOf(Reference(cat, skos.Related, cat)))
	require.NoError(t, err)

	c, _ := g.Concept(cat)
	assert.Equal(t, []string{cat}, c.Related())
	assert.True(t, c.HasRelated(cat))
}

func TestNormalize_KindMismatchCreatesNodeOnly(t *testing.T) {
	g, err := Normalize(seqOf(
		Reference(cat, skos.PrefLabel, animal),
		Literal(cat, skos.Broader, "Animal", "en"),
	))
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())

	c, _ := g.Concept(cat)
	assert.Empty(t, c.PrefLabels())
	assert.Empty(t, c.Broader())
}

func TestNormalize_UnrecognizedPredicate(t *testing.T) {
	g, err := Normalize(seqOf(
		Literal(cat, "http://purl.org/dc/terms/title", "Cat", "en"),
	))
	require.NoError(t, err)
	require.True(t, g.Has(cat))

	c, _ := g.Concept(cat)
	assert.Empty(t, c.PrefLabels())
}

func TestNormalize_PropagatesError(t *testing.T) {
	boom := errors.New("source failed")
	seq := func(yield func(RawStatement, error) bool) {
		if !yield(Declaration(cat), nil) {
			return
		}
		yield(RawStatement{}, boom)
	}

	g, err := Normalize(seq)
	assert.Nil(t, g)
	assert.Same(t, boom, err)
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := Normalize(seqOf(catScenario()...))
	require.NoError(t, err)
	second := NormalizeStatements(catScenario())

	require.Equal(t, first.URIs(), second.URIs())
	for _, uri := range first.URIs() {
		a, _ := first.Concept(uri)
		b, _ := second.Concept(uri)
		assert.Equal(t, a.PrefLabels(), b.PrefLabels())
		assert.Equal(t, a.AltLabels(), b.AltLabels())
		assert.Equal(t, a.Broader(), b.Broader())
		assert.Equal(t, a.Narrower(), b.Narrower())
		assert.Equal(t, a.Related(), b.Related())
	}
}

func TestGraph_TopConceptsAndIteration(t *testing.T) {
	g := NormalizeStatements(catScenario())

	var seen []string
	for c := range g.All() {
		seen = append(seen, c.URI())
		break
	}
	assert.Equal(t, []string{cat}, seen)

	top := g.TopConcepts()
	require.Len(t, top, 1)
	assert.Equal(t, animal, top[0].URI())
}

func TestConcept_AccessorsReturnCopies(t *testing.T) {
	g := NormalizeStatements(catScenario())
	c, _ := g.Concept(cat)

	labels := c.PrefLabels()
	labels[0].Text = "changed"
	broader := c.Broader()
	broader[0] = "changed"

	text, _ := c.PrefLabel("en")
	assert.Equal(t, "Cat", text)
	assert.Equal(t, []string{animal}, c.Broader())
}

func TestConcept_Languages(t *testing.T) {
	g := NormalizeStatements(catScenario())
	c, _ := g.Concept(cat)
	assert.Equal(t, []string{"en", "fr"}, c.Languages())
}

func TestRawStatement_String(t *testing.T) {
	assert.Equal(t, `<a> <p> "x"@en`, Literal("a", "p", "x", "en").String())
	assert.Equal(t, `<a> <p> "x"`, Literal("a", "p", "x", "").String())
	assert.Equal(t, `<a> <p> <b>`, Reference("a", "p", "b").String())
	assert.True(t, Declaration("a").IsDeclaration())
	assert.False(t, Reference("a", skos.RDFType, skos.ConceptScheme).IsDeclaration())
	assert.Equal(t, "literal", KindLiteral.String())
	assert.Equal(t, "invalid", Kind(0).String())
}
