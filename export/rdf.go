package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/c360studio/skosread/concept"
	"github.com/c360studio/skosread/vocabulary/skos"
)

// defaultPrefixes returns the namespace prefixes used by RDF reports.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"skos": skos.Namespace,
	}
}

// object is an RDF object: an IRI or a language-tagged literal.
type object interface {
	ntriples() string
}

type iriRef string

func (r iriRef) ntriples() string { return "<" + string(r) + ">" }

type langLiteral concept.LangString

func (l langLiteral) ntriples() string {
	s := `"` + literalEscaper.Replace(l.Text) + `"`
	if l.Lang != "" {
		s += "@" + l.Lang
	}
	return s
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// statement is one predicate-object pair of a concept.
type statement struct {
	field  skos.Field
	object object
}

// conceptStatements returns the SKOS statements of c in canonical
// property order.
func conceptStatements(c *concept.Concept) []statement {
	var out []statement
	addStrings := func(f skos.Field, values []concept.LangString) {
		for _, v := range values {
			out = append(out, statement{field: f, object: langLiteral(v)})
		}
	}
	addURIs := func(f skos.Field, uris []string) {
		for _, uri := range uris {
			out = append(out, statement{field: f, object: iriRef(uri)})
		}
	}
	addStrings(skos.FieldPrefLabel, c.PrefLabels())
	addStrings(skos.FieldAltLabel, c.AltLabels())
	addStrings(skos.FieldScopeNote, c.ScopeNotes())
	addStrings(skos.FieldDefinition, c.Definitions())
	addURIs(skos.FieldBroader, c.Broader())
	addURIs(skos.FieldNarrower, c.Narrower())
	addURIs(skos.FieldRelated, c.Related())
	return out
}

// TurtleWriter writes RDF in Turtle format.
type TurtleWriter struct {
	prefixes map[string]string
	sb       strings.Builder
}

// NewTurtleWriter creates a new Turtle writer with default prefixes.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{
		prefixes: defaultPrefixes(),
	}
}

// WritePrefixes writes prefix declarations.
func (w *TurtleWriter) WritePrefixes() {
	// Sort prefixes for consistent output
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, prefix := range keys {
		fmt.Fprintf(&w.sb, "@prefix %s: <%s> .\n", prefix, w.prefixes[prefix])
	}
	w.sb.WriteString("\n")
}

// WriteSubject starts a new subject block.
func (w *TurtleWriter) WriteSubject(iri string) {
	fmt.Fprintf(&w.sb, "<%s>\n", iri)
}

// WriteType writes a type assertion.
func (w *TurtleWriter) WriteType(typeName string, last bool) {
	fmt.Fprintf(&w.sb, "    a %s%s\n", typeName, terminator(last))
}

// WritePredicate writes a predicate-object pair.
func (w *TurtleWriter) WritePredicate(predicate string, obj object, last bool) {
	fmt.Fprintf(&w.sb, "    %s %s%s\n", predicate, obj.ntriples(), terminator(last))
}

// WriteBlank writes a blank line for readability.
func (w *TurtleWriter) WriteBlank() {
	w.sb.WriteString("\n")
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

func terminator(last bool) string {
	if last {
		return " ."
	}
	return " ;"
}

// NTriplesWriter writes RDF in N-Triples format.
type NTriplesWriter struct {
	sb strings.Builder
}

// NewNTriplesWriter creates a new N-Triples writer.
func NewNTriplesWriter() *NTriplesWriter {
	return &NTriplesWriter{}
}

// WriteTriple writes a single triple.
func (w *NTriplesWriter) WriteTriple(subject, predicate string, obj object) {
	fmt.Fprintf(&w.sb, "<%s> <%s> %s .\n", subject, predicate, obj.ntriples())
}

// WriteTypeTriple writes a type assertion triple.
func (w *NTriplesWriter) WriteTypeTriple(subject, typeIRI string) {
	fmt.Fprintf(&w.sb, "<%s> <%s> <%s> .\n", subject, skos.RDFType, typeIRI)
}

// String returns the accumulated N-Triples output.
func (w *NTriplesWriter) String() string {
	return w.sb.String()
}

func writeTurtle(w io.Writer, g *concept.Graph) error {
	tw := NewTurtleWriter()
	tw.WritePrefixes()
	for c := range g.All() {
		stmts := conceptStatements(c)
		tw.WriteSubject(c.URI())
		tw.WriteType("skos:Concept", len(stmts) == 0)
		for i, st := range stmts {
			tw.WritePredicate("skos:"+st.field.String(), st.object, i == len(stmts)-1)
		}
		tw.WriteBlank()
	}
	_, err := io.WriteString(w, tw.String())
	return err
}

func writeNTriples(w io.Writer, g *concept.Graph) error {
	nw := NewNTriplesWriter()
	for c := range g.All() {
		nw.WriteTypeTriple(c.URI(), skos.Concept)
		for _, st := range conceptStatements(c) {
			prop, _ := skos.PropertyFor(st.field)
			nw.WriteTriple(c.URI(), prop.IRI, st.object)
		}
	}
	_, err := io.WriteString(w, nw.String())
	return err
}

// JSONLDDocument represents a JSON-LD document structure.
type JSONLDDocument struct {
	Context map[string]any `json:"@context"`
	Graph   []JSONLDNode   `json:"@graph"`
}

// JSONLDNode represents a node in a JSON-LD graph.
type JSONLDNode struct {
	ID         string         `json:"@id"`
	Type       []string       `json:"@type,omitempty"`
	Properties map[string]any `json:"-"`
}

// MarshalJSON implements custom JSON marshaling for JSONLDNode.
func (n JSONLDNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+2)
	m["@id"] = n.ID
	if len(n.Type) > 0 {
		m["@type"] = n.Type
	}
	for k, v := range n.Properties {
		m[k] = v
	}
	return json.Marshal(m)
}

// jsonldValue is a JSON-LD value object.
type jsonldValue struct {
	Value    string `json:"@value"`
	Language string `json:"@language,omitempty"`
}

// jsonldRef is a JSON-LD node reference.
type jsonldRef struct {
	ID string `json:"@id"`
}

// NewJSONLDDocument builds a JSON-LD document for g. Property keys are
// compact "skos:" terms; literal values keep their language tags.
func NewJSONLDDocument(g *concept.Graph) *JSONLDDocument {
	doc := &JSONLDDocument{
		Context: make(map[string]any),
		Graph:   make([]JSONLDNode, 0, g.Len()),
	}
	for prefix, iri := range defaultPrefixes() {
		doc.Context[prefix] = iri
	}

	for c := range g.All() {
		props := make(map[string]any)
		for _, st := range conceptStatements(c) {
			key := "skos:" + st.field.String()
			var v any
			switch o := st.object.(type) {
			case langLiteral:
				v = jsonldValue{Value: o.Text, Language: o.Lang}
			case iriRef:
				v = jsonldRef{ID: string(o)}
			}
			list, _ := props[key].([]any)
			props[key] = append(list, v)
		}
		doc.Graph = append(doc.Graph, JSONLDNode{
			ID:         c.URI(),
			Type:       []string{"skos:Concept"},
			Properties: props,
		})
	}
	return doc
}

func writeJSONLD(w io.Writer, g *concept.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewJSONLDDocument(g)); err != nil {
		return fmt.Errorf("encode json-ld: %w", err)
	}
	return nil
}
