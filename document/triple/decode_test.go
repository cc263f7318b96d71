package triple

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNTriples(t *testing.T) {
	doc := `<http://example.org/cat> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2004/02/skos/core#Concept> .
<http://example.org/cat> <http://www.w3.org/2004/02/skos/core#prefLabel> "cat"@en .
<http://example.org/cat> <http://www.w3.org/2004/02/skos/core#altLabel> "kitty" .
<http://example.org/cat> <http://www.w3.org/2004/02/skos/core#related> _:b0 .
`
	triples, err := Decode(strings.NewReader(doc), FormatNTriples)
	require.NoError(t, err)
	require.Len(t, triples, 4)

	assert.Equal(t, IRI("http://example.org/cat"), triples[0].Subject)
	assert.Equal(t, IRI("http://www.w3.org/2004/02/skos/core#Concept"), triples[0].Object)
	assert.Equal(t, Literal("cat", "en"), triples[1].Object)
	assert.Equal(t, Literal("kitty", ""), triples[2].Object)
	assert.True(t, triples[3].Object.IsBlank())
}

func TestDecodeTurtle(t *testing.T) {
	doc := `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
@prefix ex: <http://example.org/> .

ex:cat a skos:Concept ;
    skos:prefLabel "cat"@en, "chat"@fr ;
    skos:broader ex:animal .
`
	triples, err := Decode(strings.NewReader(doc), FormatTurtle)
	require.NoError(t, err)
	require.Len(t, triples, 4)

	for _, tr := range triples {
		assert.Equal(t, "http://example.org/cat", tr.Subject.Value)
	}
	assert.Equal(t, IRI("http://example.org/animal"), triples[3].Object)
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode(strings.NewReader("<http://example.org/a> <broken"), FormatNTriples)
	require.Error(t, err)
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), Format("csv"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTermKey(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"iri", IRI("http://example.org/a"), "<http://example.org/a>"},
		{"blank strips prefix", Blank("_:b1"), "_:b1"},
		{"tagged literal", Literal("chat", "FR"), `"chat"@fr`},
		{"typed literal", TypedLiteral("1", "http://www.w3.org/2001/XMLSchema#integer"), `"1"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{"plain literal", Literal("x", ""), `"x"`},
		{"zero value", Term{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.Key())
		})
	}
}

func TestUnique(t *testing.T) {
	a := Triple{Subject: IRI("http://ex/a"), Predicate: IRI("http://ex/p"), Object: Literal("x", "en")}
	b := Triple{Subject: IRI("http://ex/a"), Predicate: IRI("http://ex/p"), Object: Literal("x", "fr")}

	got := Unique([]Triple{a, b, a})
	assert.Equal(t, []Triple{a, b}, got)
	assert.Empty(t, Unique(nil))
}
