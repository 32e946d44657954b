package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP edge metrics shared by all routes.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	EndpointLatency *prometheus.HistogramVec
}

// New creates and registers the HTTP metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the HTTP metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "idlookup_http_requests_total",
			Help: "Total number of HTTP requests by route and status class",
		}, []string{"route", "method", "status"}),
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idlookup_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, method, status string, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(route, method, status).Inc()
	m.EndpointLatency.WithLabelValues(route).Observe(durationSeconds)
}
