// Package metrics exposes Prometheus counters for the HTTP surface and the
// catalogue operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "curator"

// Collector owns its registry so several instances (tests) never collide.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Mutations     *prometheus.CounterVec // operation, outcome
	ImportedRows  prometheus.Counter
	SkippedRows   prometheus.Counter
	Exports       *prometheus.CounterVec // kind, outcome
	Logins        *prometheus.CounterVec // outcome
	Bookmarks     *prometheus.CounterVec // action
	Contributions prometheus.Counter
}

// New creates a collector with Go runtime and process metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_mutations_total",
			Help:      "Catalogue edits by operation and outcome",
		}, []string{"operation", "outcome"}),

		ImportedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_imported_total",
			Help:      "CSV rows turned into resources",
		}),

		SkippedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_skipped_total",
			Help:      "CSV rows skipped as invalid or duplicate",
		}),

		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Snapshot and contribution exports by outcome",
		}, []string{"kind", "outcome"}),

		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_logins_total",
			Help:      "Admin login attempts by outcome",
		}, []string{"outcome"}),

		Bookmarks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookmark_toggles_total",
			Help:      "Bookmark toggles by resulting action",
		}, []string{"action"}),

		Contributions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributions_total",
			Help:      "Suggestions accepted into the session list",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.Mutations,
		c.ImportedRows,
		c.SkippedRows,
		c.Exports,
		c.Logins,
		c.Bookmarks,
		c.Contributions,
	)
	return c
}

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry exposes the underlying registry (tests).
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
