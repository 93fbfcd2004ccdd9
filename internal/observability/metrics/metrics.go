package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics captures seeding health signals.
type Metrics struct {
	runs     *prometheus.CounterVec
	inserted *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewRegistry builds the registry backing the /metrics endpoint.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers the seeding metrics on the given registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seed_runs_total",
			Help: "Seeding runs by outcome.",
		}, []string{"outcome"}),
		inserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seed_documents_inserted_total",
			Help: "Documents inserted per collection across all runs.",
		}, []string{"collection"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "seed_duration_seconds",
			Help:    "Wall-clock duration of seeding runs.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.runs, m.inserted, m.duration)
	}
	return m
}

// ObserveRun records a finished run with its outcome label.
func (m *Metrics) ObserveRun(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
}

// AddInserted records documents written to a collection.
func (m *Metrics) AddInserted(collection string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.inserted.WithLabelValues(collection).Add(float64(count))
}
