// Package metrics provides Prometheus metrics for the lookup pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the lookup pipeline counters and histograms.
type Metrics struct {
	SearchesTotal        *prometheus.CounterVec   // Terminal search outcomes by category and outcome
	UpstreamDuration     *prometheus.HistogramVec // Upstream lookup latency by category
	GuardFetchFailures   *prometheus.CounterVec   // Guard list fetches that degraded to empty
	GuardEntries         *prometheus.GaugeVec     // Size of the last fetched guard list
	HistoryWriteFailures *prometheus.CounterVec   // History persists that failed and were swallowed
	HistoryReadFailures  *prometheus.CounterVec   // History reads that degraded to empty
}

// New creates a new Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the metrics on reg. Tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SearchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "idlookup_searches_total",
			Help: "Total number of search attempts by category and terminal outcome",
		}, []string{"category", "outcome"}),

		UpstreamDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idlookup_upstream_duration_seconds",
			Help:    "Duration of upstream lookup requests by category",
			Buckets: prometheus.DefBuckets,
		}, []string{"category"}),

		GuardFetchFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "idlookup_guard_fetch_failures_total",
			Help: "Guard list fetches that failed and fell back to an empty list",
		}, []string{"category", "reason"}),

		GuardEntries: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "idlookup_guard_entries",
			Help: "Number of entries in the most recently fetched guard list",
		}, []string{"category"}),

		HistoryWriteFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "idlookup_history_write_failures_total",
			Help: "History writes that failed and were swallowed",
		}, []string{"category"}),

		HistoryReadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "idlookup_history_read_failures_total",
			Help: "History reads that failed or were corrupt and returned an empty list",
		}, []string{"category"}),
	}
}

// RecordSearch records the terminal outcome of one search attempt.
func (m *Metrics) RecordSearch(category, outcome string) {
	m.SearchesTotal.WithLabelValues(category, outcome).Inc()
}

// ObserveUpstreamDuration records the latency of one upstream lookup call.
func (m *Metrics) ObserveUpstreamDuration(category string, durationSeconds float64) {
	m.UpstreamDuration.WithLabelValues(category).Observe(durationSeconds)
}

// RecordGuardFailure counts a guard fetch that degraded to empty.
func (m *Metrics) RecordGuardFailure(category, reason string) {
	m.GuardFetchFailures.WithLabelValues(category, reason).Inc()
}

// SetGuardEntries records the size of the fetched guard list.
func (m *Metrics) SetGuardEntries(category string, n int) {
	m.GuardEntries.WithLabelValues(category).Set(float64(n))
}

// RecordHistoryWriteFailure counts a swallowed history persist failure.
func (m *Metrics) RecordHistoryWriteFailure(category string) {
	m.HistoryWriteFailures.WithLabelValues(category).Inc()
}

// RecordHistoryReadFailure counts a history read that degraded to empty.
func (m *Metrics) RecordHistoryReadFailure(category string) {
	m.HistoryReadFailures.WithLabelValues(category).Inc()
}
