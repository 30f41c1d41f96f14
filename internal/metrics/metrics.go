package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// OK marks a successful run.
	OK = "ok"
	// Failed marks a run that returned an error.
	Failed = "failed"
)

// Observer is the default metrics collector.
var Observer = NewMetrics()

// Metrics records pipeline runs on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// NewMetrics creates a new Metrics with all collectors registered.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	p := NewPrometheusMetrics()
	registry.MustRegister(p.collectors()...)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

// Run records the outcome of a pipeline run.
func (m *Metrics) Run(k int, status string, duration time.Duration) {
	m.prometheus.Runs.WithLabelValues(strconv.Itoa(k), status).Inc()
	m.prometheus.Duration.Observe(duration.Seconds())
}

// Iterations records the iterations of a clustering.
func (m *Metrics) Iterations(n int) {
	m.prometheus.Iterations.Observe(float64(n))
}

// Degenerate records a zero variance feature column.
func (m *Metrics) Degenerate(feature string) {
	m.prometheus.Degenerate.WithLabelValues(feature).Inc()
}

// Handler exposes the registry in the prometheus format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
