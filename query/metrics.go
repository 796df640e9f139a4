package query

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instrumentation the engine exports.
// Tail latency is the system's explicit design constraint (spec.md
// §4.7's "p95 < 4s" contract), so query duration and how often the
// posting-list pruning cap actually engages are both tracked.
type Metrics struct {
	queryDuration  prometheus.Histogram
	pruneTotal     prometheus.Counter
	readErrorTotal prometheus.Counter
}

// NewMetrics registers the engine's metrics with reg. Pass
// prometheus.NewRegistry() in tests to avoid colliding with the
// default global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wikisearch_query_duration_seconds",
			Help:    "End-to-end search() latency.",
			Buckets: prometheus.DefBuckets,
		}),
		pruneTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wikisearch_posting_prune_total",
			Help: "Number of posting-list reads truncated by MaxDocsToRead.",
		}),
		readErrorTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wikisearch_posting_read_error_total",
			Help: "Number of per-term posting reads that failed and were treated as empty.",
		}),
	}
	reg.MustRegister(m.queryDuration, m.pruneTotal, m.readErrorTotal)
	return m
}

func (m *Metrics) observeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.queryDuration.Observe(seconds)
}

func (m *Metrics) countPrune() {
	if m == nil {
		return
	}
	m.pruneTotal.Inc()
}

func (m *Metrics) countReadError() {
	if m == nil {
		return
	}
	m.readErrorTotal.Inc()
}
