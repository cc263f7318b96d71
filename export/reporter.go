// Package export renders normalized concept graphs as text, structured
// data or SKOS RDF.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/skosread/concept"
)

// Reporter writes a concept graph. Reporters only read the graph, so one
// graph may be reported by several reporters concurrently.
type Reporter interface {
	Report(w io.Writer, g *concept.Graph) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(w io.Writer, g *concept.Graph) error

// Report implements Reporter.
func (f ReporterFunc) Report(w io.Writer, g *concept.Graph) error {
	return f(w, g)
}

// NewReporter returns the reporter for format.
func NewReporter(format Format) (Reporter, error) {
	switch format {
	case FormatText:
		return ReporterFunc(writeText), nil
	case FormatJSON:
		return ReporterFunc(writeJSON), nil
	case FormatYAML:
		return ReporterFunc(writeYAML), nil
	case FormatJSONLD:
		return ReporterFunc(writeJSONLD), nil
	case FormatTurtle:
		return ReporterFunc(writeTurtle), nil
	case FormatNTriples:
		return ReporterFunc(writeNTriples), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Report writes g to w in format.
func Report(w io.Writer, g *concept.Graph, format Format) error {
	r, err := NewReporter(format)
	if err != nil {
		return err
	}
	return r.Report(w, g)
}

// writeText lists each concept with one indented line per value.
func writeText(w io.Writer, g *concept.Graph) error {
	var sb strings.Builder
	for c := range g.All() {
		sb.WriteString(c.URI())
		sb.WriteString("\n")
		writeTextStrings(&sb, "prefLabel", c.PrefLabels())
		writeTextStrings(&sb, "altLabel", c.AltLabels())
		writeTextStrings(&sb, "scopeNote", c.ScopeNotes())
		writeTextStrings(&sb, "definition", c.Definitions())
		writeTextURIs(&sb, "broader", c.Broader())
		writeTextURIs(&sb, "narrower", c.Narrower())
		writeTextURIs(&sb, "related", c.Related())
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTextStrings(sb *strings.Builder, name string, values []concept.LangString) {
	for _, v := range values {
		if v.Lang != "" {
			fmt.Fprintf(sb, " %s: (%s) %s\n", name, v.Lang, v.Text)
		} else {
			fmt.Fprintf(sb, " %s: %s\n", name, v.Text)
		}
	}
}

func writeTextURIs(sb *strings.Builder, name string, uris []string) {
	for _, uri := range uris {
		fmt.Fprintf(sb, " %s: %s\n", name, uri)
	}
}

func writeJSON(w io.Writer, g *concept.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewGraphView(g)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, g *concept.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewGraphView(g)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
