// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the engine.
type Metrics struct {
	// Normalization metrics
	RecordsNormalized *prometheus.CounterVec
	RecordsExempted   prometheus.Counter
	ItemErrors        *prometheus.CounterVec
	UnitMismatches    prometheus.Counter

	// FX metrics
	FXConversions   prometheus.Counter
	RateCorrections prometheus.Counter
	RateIssues      *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Pipeline metrics
	PipelineRunsTotal *prometheus.CounterVec
	PipelineDuration  prometheus.Histogram
	BatchSize         prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "indicator_engine"
	}

	return &Metrics{
		RecordsNormalized: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "normalization",
			Name:      "records_normalized_total",
			Help:      "Total number of records normalized by bucket",
		}, []string{"bucket"}),
		RecordsExempted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "normalization",
			Name:      "records_exempted_total",
			Help:      "Total number of records passed through by exemption",
		}),
		ItemErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "normalization",
			Name:      "item_errors_total",
			Help:      "Total number of per-item failures by error type",
		}, []string{"error_type"}),
		UnitMismatches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "normalization",
			Name:      "unit_mismatches_total",
			Help:      "Total number of peer-group unit type mismatches",
		}),

		FXConversions: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fx",
			Name:      "conversions_total",
			Help:      "Total number of currency conversions applied",
		}),
		RateCorrections: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fx",
			Name:      "rate_corrections_total",
			Help:      "Total number of auto-corrected exchange rates",
		}),
		RateIssues: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fx",
			Name:      "rate_issues_total",
			Help:      "Total number of rate table issues by severity",
		}, []string{"severity"}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of pipeline cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of pipeline cache misses",
		}),

		PipelineRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of pipeline runs by status",
		}, []string{"status"}),
		PipelineDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Pipeline execution duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "batch_size",
			Help:      "Number of records per pipeline run",
			Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordNormalized increments the normalized-records counter for a bucket.
// Nil receivers no-op so the pipeline can run without metrics wired.
func (m *Metrics) RecordNormalized(bucket string) {
	if m == nil {
		return
	}
	m.RecordsNormalized.WithLabelValues(bucket).Inc()
}

// RecordItemError records a per-item failure.
func (m *Metrics) RecordItemError(errorType string) {
	if m == nil {
		return
	}
	m.ItemErrors.WithLabelValues(errorType).Inc()
}

// RecordRun records one pipeline run.
func (m *Metrics) RecordRun(status string, durationSeconds float64, batchSize int) {
	if m == nil {
		return
	}
	m.PipelineRunsTotal.WithLabelValues(status).Inc()
	m.PipelineDuration.Observe(durationSeconds)
	m.BatchSize.Observe(float64(batchSize))
}
