package document

import (
	"path/filepath"
	"strings"

	"github.com/c360studio/skosread/document/triple"
)

// FormatInfo provides metadata about an input serialization.
type FormatInfo struct {
	// Name is the format identifier.
	Name triple.Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extensions lists recognized file extensions (with dot).
	Extensions []string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all readable formats.
var FormatRegistry = map[triple.Format]FormatInfo{
	triple.FormatNTriples: {
		Name:        triple.FormatNTriples,
		MIMEType:    "application/n-triples",
		Extensions:  []string{".nt"},
		Description: "N-Triples - Line-based RDF format",
	},
	triple.FormatTurtle: {
		Name:        triple.FormatTurtle,
		MIMEType:    "text/turtle",
		Extensions:  []string{".ttl", ".turtle"},
		Description: "Turtle - Terse RDF Triple Language",
	},
	triple.FormatRDFXML: {
		Name:        triple.FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extensions:  []string{".rdf", ".owl", ".xml", ".skos"},
		Description: "RDF/XML - XML serialization used by OWL and SKOS tooling",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format triple.Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatFromExtension returns the format for a file based on its extension.
func FormatFromExtension(filename string) (triple.Format, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", false
	}
	for name, info := range FormatRegistry {
		for _, e := range info.Extensions {
			if e == ext {
				return name, true
			}
		}
	}
	return "", false
}

// FormatFromMimeType returns the format registered for a MIME type.
func FormatFromMimeType(mimeType string) (triple.Format, bool) {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	for name, info := range FormatRegistry {
		if info.MIMEType == mimeType {
			return name, true
		}
	}
	return "", false
}

// ParseFormat resolves a format by name, MIME type or extension.
func ParseFormat(s string) (triple.Format, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := FormatRegistry[triple.Format(s)]; ok {
		return triple.Format(s), true
	}
	if f, ok := FormatFromMimeType(s); ok {
		return f, true
	}
	if !strings.HasPrefix(s, ".") {
		s = "." + s
	}
	return FormatFromExtension("x" + s)
}
