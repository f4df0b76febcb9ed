package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	BordereauxGeneres     *prometheus.CounterVec
	ReprisesDeclenchees   *prometheus.CounterVec
	ContestationsResolues *prometheus.CounterVec
	RegularisationLignes  *prometheus.CounterVec
	JobRuns               *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// Default is registered on the global Prometheus registry served at /metrics.
var Default = New(prometheus.DefaultRegisterer)

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		BordereauxGeneres: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_bordereaux_generated_total",
				Help: "Total number of bordereau generations by outcome",
			},
			[]string{"outcome"},
		),
		ReprisesDeclenchees: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_reprises_triggered_total",
				Help: "Total number of clawbacks triggered by type",
			},
			[]string{"type"},
		),
		ContestationsResolues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_contestations_resolved_total",
				Help: "Total number of resolved disputes by outcome",
			},
			[]string{"statut"},
		),
		RegularisationLignes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_regularisation_lines_total",
				Help: "Total number of regularisation lines appended to validated statements",
			},
			[]string{"source"},
		),
		JobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_period_close_runs_total",
				Help: "Total number of period-close generations by outcome",
			},
			[]string{"outcome"},
		),

		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache"},
		),
	}
}
