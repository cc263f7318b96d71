package pipeline

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Document outcomes recorded by skosread_documents_total.
const (
	outcomeOK          = "ok"
	outcomeLoadError   = "load_error"
	outcomeSourceError = "source_error"
)

// runMetrics holds Prometheus metrics for pipeline runs.
type runMetrics struct {
	documents  *prometheus.CounterVec   // By backend and outcome
	statements *prometheus.CounterVec   // By backend
	malformed  *prometheus.CounterVec   // By backend
	concepts   *prometheus.GaugeVec     // By backend, last run
	duration   *prometheus.HistogramVec // By backend
}

// newRunMetrics creates and registers pipeline metrics. A nil registerer
// disables metrics.
func newRunMetrics(reg prometheus.Registerer) (*runMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &runMetrics{
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skosread",
			Name:      "documents_total",
			Help:      "Total number of vocabulary documents processed",
		}, []string{"backend", "outcome"}),

		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skosread",
			Name:      "statements_total",
			Help:      "Total number of SKOS statements read from documents",
		}, []string{"backend"}),

		malformed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skosread",
			Name:      "malformed_statements_total",
			Help:      "Total number of statements skipped because of malformed values",
		}, []string{"backend"}),

		concepts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "skosread",
			Name:      "concepts",
			Help:      "Number of concepts in the most recently normalized graph",
		}, []string{"backend"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skosread",
			Name:      "run_duration_seconds",
			Help:      "Time to load and normalize one document",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}, // 1ms to 5s
		}, []string{"backend"}),
	}

	var err error
	if m.documents, err = register(reg, m.documents); err != nil {
		return nil, err
	}
	if m.statements, err = register(reg, m.statements); err != nil {
		return nil, err
	}
	if m.malformed, err = register(reg, m.malformed); err != nil {
		return nil, err
	}
	if m.concepts, err = register(reg, m.concepts); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, reusing the collector already registered under
// the same descriptor so several pipelines can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *runMetrics) recordDocument(backend, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(backend, outcome).Inc()
	m.duration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

func (m *runMetrics) recordGraph(backend string, statements, malformed, concepts int) {
	if m == nil {
		return
	}
	m.statements.WithLabelValues(backend).Add(float64(statements))
	m.malformed.WithLabelValues(backend).Add(float64(malformed))
	m.concepts.WithLabelValues(backend).Set(float64(concepts))
}
