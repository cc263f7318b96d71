package skos_test

import (
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/skosread/vocabulary/skos"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		iri   string
		field skos.Field
		rng   skos.Range
	}{
		{"http://www.w3.org/2004/02/skos/core#prefLabel", skos.FieldPrefLabel, skos.RangeLiteral},
		{"http://www.w3.org/2004/02/skos/core#altLabel", skos.FieldAltLabel, skos.RangeLiteral},
		{"http://www.w3.org/2004/02/skos/core#scopeNote", skos.FieldScopeNote, skos.RangeLiteral},
		{"http://www.w3.org/2004/02/skos/core#definition", skos.FieldDefinition, skos.RangeLiteral},
		{"http://www.w3.org/2004/02/skos/core#broader", skos.FieldBroader, skos.RangeConcept},
		{"http://www.w3.org/2004/02/skos/core#narrower", skos.FieldNarrower, skos.RangeConcept},
		{"http://www.w3.org/2004/02/skos/core#related", skos.FieldRelated, skos.RangeConcept},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			p, ok := skos.Lookup(tt.iri)
			require.True(t, ok)
			assert.Equal(t, tt.iri, p.IRI)
			assert.Equal(t, tt.field, p.Field)
			assert.Equal(t, tt.rng, p.Range)
			assert.NotEmpty(t, p.Predicate)
		})
	}
}

func TestLookupIgnoresOtherPredicates(t *testing.T) {
	for _, iri := range []string{
		skos.RDFType,
		skos.InScheme,
		"http://www.w3.org/2004/02/skos/core#hiddenLabel",
		"http://www.w3.org/2000/01/rdf-schema#label",
		"",
	} {
		assert.False(t, skos.IsRecognized(iri), iri)
	}
}

func TestPropertiesReturnsFreshSlice(t *testing.T) {
	first := skos.Properties()
	require.Len(t, first, 7)
	assert.Equal(t, skos.PrefLabel, first[0].IRI)
	assert.Equal(t, skos.Related, first[6].IRI)

	first[0].IRI = "mutated"
	assert.Equal(t, skos.PrefLabel, skos.Properties()[0].IRI)
}

func TestPropertyFor(t *testing.T) {
	p, ok := skos.PropertyFor(skos.FieldNarrower)
	require.True(t, ok)
	assert.Equal(t, skos.Narrower, p.IRI)

	_, ok = skos.PropertyFor(skos.Field(0))
	assert.False(t, ok)
}

func TestPredicatesRegistered(t *testing.T) {
	predicates := []string{
		skos.PredicateType,
		skos.PredicatePrefLabel,
		skos.PredicateAltLabel,
		skos.PredicateScopeNote,
		skos.PredicateDefinition,
		skos.PredicateBroader,
		skos.PredicateNarrower,
		skos.PredicateRelated,
	}

	for _, predicate := range predicates {
		t.Run(predicate, func(t *testing.T) {
			assert.True(t, vocabulary.IsValidPredicate(predicate))
			meta := vocabulary.GetPredicateMetadata(predicate)
			require.NotNil(t, meta, "predicate %q not registered", predicate)
			assert.NotEmpty(t, meta.Description)
			assert.NotEmpty(t, meta.StandardIRI)
		})
	}
}

func TestRegisteredIRIsMatchLookup(t *testing.T) {
	for _, p := range skos.Properties() {
		meta := vocabulary.GetPredicateMetadata(p.Predicate)
		require.NotNil(t, meta)
		assert.Equal(t, p.IRI, meta.StandardIRI)
	}
}
