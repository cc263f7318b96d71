// Package document loads vocabulary files into one of the three backend
// object models: an RDF statement graph, an OWL axiom ontology or a SKOS
// annotation dataset.
package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/skosread/document/dataset"
	"github.com/c360studio/skosread/document/owl"
	"github.com/c360studio/skosread/document/rdfgraph"
	"github.com/c360studio/skosread/document/triple"
)

// Backend names a document object model.
type Backend string

// Supported backends.
const (
	// BackendGraph loads documents as an *rdfgraph.Graph.
	BackendGraph Backend = "graph"

	// BackendOntology loads documents as an *owl.Ontology.
	BackendOntology Backend = "ontology"

	// BackendDataset loads documents as a *dataset.Dataset.
	BackendDataset Backend = "dataset"
)

// Backends returns all supported backends.
func Backends() []Backend {
	return []Backend{BackendGraph, BackendOntology, BackendDataset}
}

// ParseBackend resolves a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendGraph, BackendOntology, BackendDataset:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Document is a loaded vocabulary. Handle holds the backend object model
// and is owned by whoever consumes the document; backends are not safe
// for concurrent use.
type Document struct {
	Path    string
	Format  triple.Format
	Backend Backend
	Triples int
	Handle  any
}

// Loader reads vocabulary files.
type Loader struct {
	logger *slog.Logger
	format triple.Format
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFormat forces an input format instead of detecting it from the file
// extension.
func WithFormat(format triple.Format) LoaderOption {
	return func(l *Loader) {
		l.format = format
	}
}

// NewLoader creates a loader.
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load opens, decodes and closes path, then builds the handle for backend.
// Every failure is a *LoadError.
func (l *Loader) Load(path string, backend Backend) (*Document, error) {
	if _, err := ParseBackend(string(backend)); err != nil {
		return nil, err
	}

	format, err := l.resolveFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadError(path, ReasonNotFound, err)
		}
		return nil, loadError(path, ReasonUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, loadError(path, ReasonUnreadable, err)
	}
	if info.IsDir() {
		return nil, loadError(path, ReasonUnreadable, fmt.Errorf("is a directory"))
	}

	return l.decode(f, path, format, backend)
}

// LoadReader decodes a document from r. name is used in errors only.
func (l *Loader) LoadReader(r io.Reader, name string, format triple.Format, backend Backend) (*Document, error) {
	if _, err := ParseBackend(string(backend)); err != nil {
		return nil, err
	}
	if _, ok := FormatRegistry[format]; !ok {
		return nil, loadError(name, ReasonUnsupportedFormat, fmt.Errorf("format %q", format))
	}
	return l.decode(r, name, format, backend)
}

func (l *Loader) decode(r io.Reader, name string, format triple.Format, backend Backend) (*Document, error) {
	triples, err := triple.Decode(r, format)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, loadError(name, ReasonUnreadable, err)
		}
		return nil, loadError(name, ReasonMalformedSyntax, err)
	}

	doc := &Document{
		Path:    name,
		Format:  format,
		Backend: backend,
		Triples: len(triples),
		Handle:  Build(triples, backend),
	}

	l.logger.Debug("Loaded vocabulary document",
		"path", name,
		"format", format,
		"backend", backend,
		"triples", len(triples))

	return doc, nil
}

func (l *Loader) resolveFormat(path string) (triple.Format, error) {
	if l.format != "" {
		if _, ok := FormatRegistry[l.format]; !ok {
			return "", loadError(path, ReasonUnsupportedFormat, fmt.Errorf("format %q", l.format))
		}
		return l.format, nil
	}
	format, ok := FormatFromExtension(path)
	if !ok {
		return "", loadError(path, ReasonUnsupportedFormat, fmt.Errorf("no reader for file type %q", filepath.Ext(path)))
	}
	return format, nil
}

// Build creates the backend handle for already-decoded triples. Repeated
// statements are collapsed first, since an RDF graph is a set.
func Build(triples []triple.Triple, backend Backend) any {
	triples = triple.Unique(triples)
	switch backend {
	case BackendOntology:
		return owl.FromTriples(triples)
	case BackendDataset:
		return dataset.FromTriples(triples)
	default:
		return rdfgraph.New(triples)
	}
}
