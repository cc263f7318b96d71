// Package pipeline runs one vocabulary document through loading, statement
// extraction and normalization, and records run metrics.
package pipeline

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/skosread/concept"
	"github.com/c360studio/skosread/document"
	"github.com/c360studio/skosread/document/triple"
	"github.com/c360studio/skosread/source"
)

// Result is the outcome of one successful run.
type Result struct {
	// RunID identifies the run in logs and published messages.
	RunID string

	Path    string
	Backend document.Backend
	Format  triple.Format

	// Graph is the normalized concept graph.
	Graph *concept.Graph

	// Statements is the number of statements the adapter yielded.
	Statements int

	// Malformed lists the values skipped during extraction.
	Malformed []source.MalformedStatement

	Duration time.Duration
}

// Pipeline loads and normalizes vocabulary documents with one backend.
type Pipeline struct {
	backend     document.Backend
	format      triple.Format
	logger      *slog.Logger
	registerer  prometheus.Registerer
	diagnostics func(source.MalformedStatement)
	metrics     *runMetrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithInputFormat forces the input format instead of detecting it from the
// file extension.
func WithInputFormat(format triple.Format) Option {
	return func(p *Pipeline) {
		p.format = format
	}
}

// WithRegisterer enables metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Pipeline) {
		p.registerer = reg
	}
}

// WithDiagnostics adds a sink called for every skipped value, after the
// value has been logged.
func WithDiagnostics(sink func(source.MalformedStatement)) Option {
	return func(p *Pipeline) {
		p.diagnostics = sink
	}
}

// New creates a pipeline for backend.
func New(backend document.Backend, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	b, err := document.ParseBackend(string(backend))
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pipeline{backend: b, logger: logger}
	for _, opt := range opts {
		opt(p)
	}

	if p.format != "" {
		if _, ok := document.GetFormatInfo(p.format); !ok {
			return nil, fmt.Errorf("%w: %q", triple.ErrUnsupportedFormat, p.format)
		}
	}

	p.metrics, err = newRunMetrics(p.registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return p, nil
}

// Backend returns the backend documents are loaded with.
func (p *Pipeline) Backend() document.Backend {
	return p.backend
}

// Run loads path and returns its normalized concept graph. On error no
// graph is returned.
func (p *Pipeline) Run(path string) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger := p.logger.With("run_id", runID, "path", path, "backend", p.backend)

	var loaderOpts []document.LoaderOption
	if p.format != "" {
		loaderOpts = append(loaderOpts, document.WithFormat(p.format))
	}
	doc, err := document.NewLoader(logger, loaderOpts...).Load(path, p.backend)
	if err != nil {
		p.metrics.recordDocument(string(p.backend), outcomeLoadError, time.Since(start))
		return nil, err
	}

	res, err := p.extract(doc, logger)
	if err != nil {
		p.metrics.recordDocument(string(p.backend), outcomeSourceError, time.Since(start))
		return nil, err
	}

	res.RunID = runID
	res.Duration = time.Since(start)
	p.metrics.recordDocument(string(p.backend), outcomeOK, res.Duration)
	p.metrics.recordGraph(string(p.backend), res.Statements, len(res.Malformed), res.Graph.Len())

	logger.Info("Normalized vocabulary",
		"concepts", res.Graph.Len(),
		"statements", res.Statements,
		"malformed", len(res.Malformed),
		"duration", res.Duration)

	return res, nil
}

func (p *Pipeline) extract(doc *document.Document, logger *slog.Logger) (*Result, error) {
	res := &Result{
		Path:    doc.Path,
		Backend: doc.Backend,
		Format:  doc.Format,
	}

	adapter, err := source.ForDocument(doc,
		source.WithLogger(logger),
		source.WithDiagnostics(func(m source.MalformedStatement) {
			logger.Warn("Skipped malformed statement",
				"subject", m.Subject,
				"predicate", m.Predicate,
				"reason", m.Reason,
				"value", m.Value)
			res.Malformed = append(res.Malformed, m)
			if p.diagnostics != nil {
				p.diagnostics(m)
			}
		}))
	if err != nil {
		return nil, fmt.Errorf("adapt %s: %w", doc.Path, err)
	}

	g, err := concept.Normalize(counted(adapter.Statements(), &res.Statements))
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", doc.Path, err)
	}
	res.Graph = g
	return res, nil
}

// counted passes seq through, counting the statements it yields.
func counted(seq iter.Seq2[concept.RawStatement, error], n *int) iter.Seq2[concept.RawStatement, error] {
	return func(yield func(concept.RawStatement, error) bool) {
		for st, err := range seq {
			if err == nil {
				*n++
			}
			if !yield(st, err) {
				return
			}
		}
	}
}
