package export

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Format names a report serialization.
type Format string

const (
	// FormatText produces an indented, human-readable listing.
	FormatText Format = "text"

	// FormatJSON produces a JSON document of concept views.
	FormatJSON Format = "json"

	// FormatYAML produces a YAML document of concept views.
	FormatYAML Format = "yaml"

	// FormatJSONLD produces a JSON-LD @graph using SKOS terms.
	FormatJSONLD Format = "jsonld"

	// FormatTurtle produces SKOS Turtle.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces SKOS N-Triples.
	FormatNTriples Format = "ntriples"
)

// FormatInfo provides metadata about a report format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatText: {
		Name:        FormatText,
		MIMEType:    "text/plain",
		Extension:   ".txt",
		Description: "Plain text listing of concepts",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON concept views",
	},
	FormatYAML: {
		Name:        FormatYAML,
		MIMEType:    "application/yaml",
		Extension:   ".yaml",
		Description: "YAML concept views",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Formats returns all registered format names, sorted.
func Formats() []Format {
	out := make([]Format, 0, len(FormatRegistry))
	for f := range FormatRegistry {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// ParseFormat resolves a format name. "yml" and "nt" are accepted as
// aliases.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	switch name {
	case "yml":
		name = FormatYAML
	case "nt":
		name = FormatNTriples
	case "ttl":
		name = FormatTurtle
	}
	if _, ok := FormatRegistry[name]; !ok {
		return "", fmt.Errorf("unsupported format: %s", s)
	}
	return name, nil
}

// FormatFromExtension returns the format whose extension matches path.
func FormatFromExtension(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" {
		return FormatYAML, true
	}
	for _, info := range FormatRegistry {
		if info.Extension == ext {
			return info.Name, true
		}
	}
	return "", false
}
