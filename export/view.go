package export

import (
	"github.com/c360studio/skosread/concept"
)

// ConceptView is the serializable form of a concept.
type ConceptView struct {
	URI         string               `json:"uri" yaml:"uri"`
	PrefLabels  []concept.LangString `json:"prefLabels" yaml:"prefLabels"`
	AltLabels   []concept.LangString `json:"altLabels" yaml:"altLabels"`
	ScopeNotes  []concept.LangString `json:"scopeNotes,omitempty" yaml:"scopeNotes,omitempty"`
	Definitions []concept.LangString `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	Broader     []string             `json:"broader" yaml:"broader"`
	Narrower    []string             `json:"narrower" yaml:"narrower"`
	Related     []string             `json:"related" yaml:"related"`
}

// GraphView is the serializable form of a concept graph.
type GraphView struct {
	Concepts []ConceptView `json:"concepts" yaml:"concepts"`
}

// NewConceptView copies a concept into its view.
func NewConceptView(c *concept.Concept) ConceptView {
	return ConceptView{
		URI:         c.URI(),
		PrefLabels:  c.PrefLabels(),
		AltLabels:   c.AltLabels(),
		ScopeNotes:  c.ScopeNotes(),
		Definitions: c.Definitions(),
		Broader:     c.Broader(),
		Narrower:    c.Narrower(),
		Related:     c.Related(),
	}
}

// NewGraphView copies every concept of g, in graph order.
func NewGraphView(g *concept.Graph) GraphView {
	v := GraphView{Concepts: make([]ConceptView, 0, g.Len())}
	for c := range g.All() {
		v.Concepts = append(v.Concepts, NewConceptView(c))
	}
	return v
}
