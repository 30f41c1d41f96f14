package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "educluster"

// Prometheus holds the collectors of the pipeline.
type Prometheus struct {
	Runs       *prometheus.CounterVec
	Iterations prometheus.Histogram
	Duration   prometheus.Histogram
	Degenerate *prometheus.CounterVec
}

// NewPrometheusMetrics creates the pipeline collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "pipeline runs by cluster count and status",
			}, []string{"k", "status"}),
		Iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "kmeans_iterations",
				Help:      "refinement iterations of the selected k-means run",
				Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 300},
			}),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "pipeline run duration",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			}),
		Degenerate: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "degenerate_columns_total",
				Help:      "feature columns found with zero variance",
			}, []string{"feature"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Runs, p.Iterations, p.Duration, p.Degenerate}
}
