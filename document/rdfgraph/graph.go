// Package rdfgraph is the statement-graph document backend: a vocabulary
// document held as an indexed set of RDF triples.
package rdfgraph

import (
	"github.com/c360studio/skosread/document/triple"
)

// RDFType is the rdf:type predicate used for class membership.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Graph is an in-memory RDF graph. Statements keep document order and
// duplicate triples are stored once.
type Graph struct {
	triples   []triple.Triple
	seen      map[string]struct{}
	bySubject map[string][]int
	subjects  []triple.Term
}

// New returns a graph holding the given triples.
func New(triples []triple.Triple) *Graph {
	g := &Graph{
		seen:      make(map[string]struct{}, len(triples)),
		bySubject: make(map[string][]int),
	}
	for _, t := range triples {
		g.Add(t)
	}
	return g
}

// Add inserts a triple. It reports false when the triple was already present.
func (g *Graph) Add(t triple.Triple) bool {
	key := t.Subject.Key() + " " + t.Predicate.Key() + " " + t.Object.Key()
	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = struct{}{}

	subjectKey := t.Subject.Key()
	if _, ok := g.bySubject[subjectKey]; !ok {
		g.subjects = append(g.subjects, t.Subject)
	}
	g.bySubject[subjectKey] = append(g.bySubject[subjectKey], len(g.triples))
	g.triples = append(g.triples, t)
	return true
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Subjects returns every subject in first-seen order.
func (g *Graph) Subjects() []triple.Term {
	out := make([]triple.Term, len(g.subjects))
	copy(out, g.subjects)
	return out
}

// ListSubjectsWithProperty returns the distinct subjects of all statements
// with the given predicate and object, ordered by the first such statement.
func (g *Graph) ListSubjectsWithProperty(predicate, object triple.Term) []triple.Term {
	var out []triple.Term
	found := make(map[string]struct{})
	for _, t := range g.triples {
		if t.Predicate != predicate || t.Object != object {
			continue
		}
		key := t.Subject.Key()
		if _, ok := found[key]; ok {
			continue
		}
		found[key] = struct{}{}
		out = append(out, t.Subject)
	}
	return out
}

// InstancesOf returns the subjects typed with class via rdf:type, in the
// document order of their type statements.
func (g *Graph) InstancesOf(class string) []triple.Term {
	return g.ListSubjectsWithProperty(triple.IRI(RDFType), triple.IRI(class))
}

// ListProperties returns every statement about subject in document order.
func (g *Graph) ListProperties(subject triple.Term) []triple.Triple {
	idxs := g.bySubject[subject.Key()]
	out := make([]triple.Triple, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, g.triples[idx])
	}
	return out
}

// Triples returns all statements in document order.
func (g *Graph) Triples() []triple.Triple {
	out := make([]triple.Triple, len(g.triples))
	copy(out, g.triples)
	return out
}
