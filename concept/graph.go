package concept

import "iter"

// Graph owns every concept discovered in one document, keyed by URI and
// ordered by first appearance.
type Graph struct {
	order    []string
	concepts map[string]*Concept
}

func newGraph() *Graph {
	return &Graph{concepts: make(map[string]*Concept)}
}

// ensure returns the concept for uri, creating it on first sight.
func (g *Graph) ensure(uri string) *Concept {
	if c, ok := g.concepts[uri]; ok {
		return c
	}
	c := newConcept(uri)
	g.concepts[uri] = c
	g.order = append(g.order, uri)
	return c
}

// Len returns the number of concepts.
func (g *Graph) Len() int {
	return len(g.order)
}

// Concept returns the concept with the given URI.
func (g *Graph) Concept(uri string) (*Concept, bool) {
	c, ok := g.concepts[uri]
	return c, ok
}

// Has reports whether uri names a concept of the graph.
func (g *Graph) Has(uri string) bool {
	_, ok := g.concepts[uri]
	return ok
}

// URIs returns all concept URIs in first-seen order.
func (g *Graph) URIs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Concepts returns all concepts in first-seen order.
func (g *Graph) Concepts() []*Concept {
	out := make([]*Concept, 0, len(g.order))
	for _, uri := range g.order {
		out = append(out, g.concepts[uri])
	}
	return out
}

// All iterates the concepts in first-seen order.
func (g *Graph) All() iter.Seq[*Concept] {
	return func(yield func(*Concept) bool) {
		for _, uri := range g.order {
			if !yield(g.concepts[uri]) {
				return
			}
		}
	}
}

// TopConcepts returns the concepts that have no broader concept, in
// first-seen order.
func (g *Graph) TopConcepts() []*Concept {
	var out []*Concept
	for c := range g.All() {
		if len(c.broader.order) == 0 {
			out = append(out, c)
		}
	}
	return out
}

// Dangling returns, in first-seen order, the relation targets that do not
// name a concept of the graph.
func (g *Graph) Dangling() []string {
	seen := make(map[string]struct{})
	var out []string
	for c := range g.All() {
		for _, set := range []*uriSet{&c.broader, &c.narrower, &c.related} {
			for _, uri := range set.order {
				if g.Has(uri) {
					continue
				}
				if _, ok := seen[uri]; ok {
					continue
				}
				seen[uri] = struct{}{}
				out = append(out, uri)
			}
		}
	}
	return out
}
