package concept

import (
	"iter"

	"github.com/c360studio/skosread/vocabulary/skos"
)

// Normalize folds a statement sequence into a Graph in a single pass.
//
// The first statement about a subject creates its concept. Literal values
// are appended to their attribute; reference values are added to their
// relation set unless already present. Statements whose predicate is not
// recognized, or whose value kind does not match the predicate's range,
// only create the subject node.
//
// If the sequence yields a non-nil error, Normalize stops and returns that
// error unchanged with a nil Graph.
func Normalize(statements iter.Seq2[RawStatement, error]) (*Graph, error) {
	g := newGraph()
	for st, err := range statements {
		if err != nil {
			return nil, err
		}
		apply(g, st)
	}
	return g, nil
}

// NormalizeStatements normalizes an already materialized statement slice.
func NormalizeStatements(statements []RawStatement) *Graph {
	g := newGraph()
	for _, st := range statements {
		apply(g, st)
	}
	return g
}

func apply(g *Graph, st RawStatement) {
	if st.Subject == "" {
		return
	}
	c := g.ensure(st.Subject)

	prop, ok := skos.Lookup(st.Predicate)
	if !ok {
		return
	}

	switch prop.Range {
	case skos.RangeLiteral:
		if st.Kind != KindLiteral {
			return
		}
		value := LangString{Lang: st.Lang, Text: st.Text}
		switch prop.Field {
		case skos.FieldPrefLabel:
			c.prefLabels = append(c.prefLabels, value)
		case skos.FieldAltLabel:
			c.altLabels = append(c.altLabels, value)
		case skos.FieldScopeNote:
			c.scopeNotes = append(c.scopeNotes, value)
		case skos.FieldDefinition:
			c.definitions = append(c.definitions, value)
		}
	case skos.RangeConcept:
		if st.Kind != KindReference || st.Target == "" {
			return
		}
		switch prop.Field {
		case skos.FieldBroader:
			c.broader.add(st.Target)
		case skos.FieldNarrower:
			c.narrower.add(st.Target)
		case skos.FieldRelated:
			c.related.add(st.Target)
		}
	}
}
