// Package metrics exposes Prometheus metrics for the reconciliation engine.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"venmito/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "venmito"

// Registry owns a private Prometheus registry so tests can build as many as they like.
type Registry struct {
	reg *prometheus.Registry

	RowsTotal     *prometheus.CounterVec
	BatchesTotal  *prometheus.CounterVec
	BatchDuration *prometheus.HistogramVec

	// Populated by the ingestion worker from pushed batch events.
	EventsReceived *prometheus.CounterVec
	EventLag       *prometheus.HistogramVec
}

var _ service.IngestionMetrics = (*Registry)(nil)

// NewRegistry creates the ingestion collectors plus the standard Go and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	rows := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "rows_total",
			Help:      "Uploaded rows by family and outcome (succeeded, skipped)",
		},
		[]string{"family", "outcome"},
	)
	batches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "batches_total",
			Help:      "Upload batches by family and status (committed, rejected, failed)",
		},
		[]string{"family", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "batch_duration_seconds",
			Help:      "Duration of upload batches in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"family"},
	)

	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "events_received_total",
			Help:      "Committed-batch events received by the worker, by family",
		},
		[]string{"family"},
	)
	lag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "event_lag_seconds",
			Help:      "Delay between batch commit and event delivery",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"family"},
	)

	reg.MustRegister(
		rows,
		batches,
		duration,
		events,
		lag,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg:           reg,
		RowsTotal:     rows,
		BatchesTotal:  batches,
		BatchDuration: duration,

		EventsReceived: events,
		EventLag:       lag,
	}
}

// RegisterDBStats exports the connection pool statistics of db under the given database name.
func (r *Registry) RegisterDBStats(db *sql.DB, name string) error {
	return r.reg.Register(collectors.NewDBStatsCollector(db, name))
}

// ObserveRows adds the row outcomes of one batch.
func (r *Registry) ObserveRows(family string, succeeded, skipped int) {
	r.RowsTotal.WithLabelValues(family, "succeeded").Add(float64(succeeded))
	r.RowsTotal.WithLabelValues(family, "skipped").Add(float64(skipped))
}

// ObserveBatch counts a finished batch and its duration.
func (r *Registry) ObserveBatch(family string, status string, elapsed time.Duration) {
	r.BatchesTotal.WithLabelValues(family, status).Inc()
	r.BatchDuration.WithLabelValues(family).Observe(elapsed.Seconds())
}

// ObserveEvent counts a delivered batch event. Negative lags from clock skew are recorded as zero.
func (r *Registry) ObserveEvent(family string, lag time.Duration) {
	r.EventsReceived.WithLabelValues(family).Inc()
	r.EventLag.WithLabelValues(family).Observe(max(lag, 0).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
