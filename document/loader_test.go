package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/skosread/document/dataset"
	"github.com/c360studio/skosread/document/owl"
	"github.com/c360studio/skosread/document/rdfgraph"
	"github.com/c360studio/skosread/document/triple"
)

const catTurtle = `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
@prefix ex: <http://example.org/> .

ex:cat a skos:Concept ;
    skos:prefLabel "cat"@en, "chat"@fr ;
    skos:broader ex:animal .
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBackends(t *testing.T) {
	path := writeFile(t, "vocab.ttl", catTurtle)
	loader := NewLoader(nil)

	tests := []struct {
		backend Backend
		check   func(t *testing.T, handle any)
	}{
		{BackendGraph, func(t *testing.T, handle any) {
			g, ok := handle.(*rdfgraph.Graph)
			require.True(t, ok)
			assert.Equal(t, 4, g.Len())
		}},
		{BackendOntology, func(t *testing.T, handle any) {
			o, ok := handle.(*owl.Ontology)
			require.True(t, ok)
			assert.Len(t, o.ClassAssertionAxioms("http://www.w3.org/2004/02/skos/core#Concept"), 1)
		}},
		{BackendDataset, func(t *testing.T, handle any) {
			d, ok := handle.(*dataset.Dataset)
			require.True(t, ok)
			assert.Len(t, d.SKOSConcepts(), 1)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			doc, err := loader.Load(path, tt.backend)
			require.NoError(t, err)
			assert.Equal(t, path, doc.Path)
			assert.Equal(t, triple.FormatTurtle, doc.Format)
			assert.Equal(t, tt.backend, doc.Backend)
			assert.Equal(t, 4, doc.Triples)
			tt.check(t, doc.Handle)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(nil)

	tests := []struct {
		name   string
		path   string
		reason LoadReason
	}{
		{"missing file", filepath.Join(dir, "missing.ttl"), ReasonNotFound},
		{"unknown extension", writeFile(t, "vocab.csv", "a,b"), ReasonUnsupportedFormat},
		{"no extension", writeFile(t, "vocab", catTurtle), ReasonUnsupportedFormat},
		{"bad syntax", writeFile(t, "broken.nt", "<http://example.org/a> <broken"), ReasonMalformedSyntax},
		{"directory", func() string {
			p := filepath.Join(dir, "folder.ttl")
			require.NoError(t, os.Mkdir(p, 0755))
			return p
		}(), ReasonUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := loader.Load(tt.path, BackendGraph)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrDocumentLoad)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.reason, loadErr.Reason)
			assert.Equal(t, tt.path, loadErr.Path)
		})
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	path := writeFile(t, "vocab.ttl", catTurtle)
	_, err := NewLoader(nil).Load(path, Backend("sparql"))
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestLoadWithFormatOverride(t *testing.T) {
	path := writeFile(t, "vocab.txt", catTurtle)

	doc, err := NewLoader(nil, WithFormat(triple.FormatTurtle)).Load(path, BackendGraph)
	require.NoError(t, err)
	assert.Equal(t, triple.FormatTurtle, doc.Format)
}

func TestLoadReader(t *testing.T) {
	doc, err := NewLoader(nil).LoadReader(strings.NewReader(catTurtle), "inline", triple.FormatTurtle, BackendDataset)
	require.NoError(t, err)
	assert.IsType(t, &dataset.Dataset{}, doc.Handle)

	_, err = NewLoader(nil).LoadReader(strings.NewReader(""), "inline", triple.Format("csv"), BackendGraph)
	require.ErrorIs(t, err, ErrDocumentLoad)
}

func TestParseBackend(t *testing.T) {
	for _, b := range Backends() {
		got, err := ParseBackend(strings.ToUpper(string(b)))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := ParseBackend("jena")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
