package concept

// LangString is a text value with an optional language tag. An empty Lang
// means the source literal carried no tag.
type LangString struct {
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`
	Text string `json:"text" yaml:"text"`
}

// uriSet is an insertion-ordered set of URIs.
type uriSet struct {
	order []string
	index map[string]struct{}
}

func (s *uriSet) add(uri string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[uri]; ok {
		return false
	}
	s.index[uri] = struct{}{}
	s.order = append(s.order, uri)
	return true
}

func (s *uriSet) has(uri string) bool {
	_, ok := s.index[uri]
	return ok
}

func (s *uriSet) list() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Concept is one SKOS concept.
type Concept struct {
	uri         string
	prefLabels  []LangString
	altLabels   []LangString
	scopeNotes  []LangString
	definitions []LangString
	broader     uriSet
	narrower    uriSet
	related     uriSet
}

func newConcept(uri string) *Concept {
	return &Concept{uri: uri}
}

// URI returns the concept identity.
func (c *Concept) URI() string { return c.uri }

// PrefLabels returns all preferred labels in source order.
func (c *Concept) PrefLabels() []LangString { return cloneStrings(c.prefLabels) }

// AltLabels returns all alternative labels in source order.
func (c *Concept) AltLabels() []LangString { return cloneStrings(c.altLabels) }

// ScopeNotes returns all scope notes in source order.
func (c *Concept) ScopeNotes() []LangString { return cloneStrings(c.scopeNotes) }

// Definitions returns all definitions in source order.
func (c *Concept) Definitions() []LangString { return cloneStrings(c.definitions) }

// Broader returns the URIs of broader concepts.
func (c *Concept) Broader() []string { return c.broader.list() }

// Narrower returns the URIs of narrower concepts.
func (c *Concept) Narrower() []string { return c.narrower.list() }

// Related returns the URIs of related concepts.
func (c *Concept) Related() []string { return c.related.list() }

// HasBroader reports whether uri is a broader concept of c.
func (c *Concept) HasBroader(uri string) bool { return c.broader.has(uri) }

// HasNarrower reports whether uri is a narrower concept of c.
func (c *Concept) HasNarrower(uri string) bool { return c.narrower.has(uri) }

// HasRelated reports whether uri is related to c.
func (c *Concept) HasRelated(uri string) bool { return c.related.has(uri) }

// PrefLabel returns the first preferred label tagged lang.
// Several preferred labels may share a language; see PrefLabels.
func (c *Concept) PrefLabel(lang string) (string, bool) {
	for _, l := range c.prefLabels {
		if l.Lang == lang {
			return l.Text, true
		}
	}
	return "", false
}

// Languages returns the distinct language tags used by the concept's
// labels, notes and definitions, in first-seen order. Untagged values
// contribute the empty string.
func (c *Concept) Languages() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, values := range [][]LangString{c.prefLabels, c.altLabels, c.scopeNotes, c.definitions} {
		for _, v := range values {
			if _, ok := seen[v.Lang]; ok {
				continue
			}
			seen[v.Lang] = struct{}{}
			out = append(out, v.Lang)
		}
	}
	return out
}

func cloneStrings(in []LangString) []LangString {
	out := make([]LangString, len(in))
	copy(out, in)
	return out
}
