// Package metrics provides Prometheus metrics for the wellness monitor.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector of the service on its own registry.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	analyses        *prometheus.CounterVec
	analysisLatency *prometheus.HistogramVec

	readingsIngested *prometheus.CounterVec
	coachingRequests *prometheus.CounterVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom histogram buckets for latency metrics.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry sets the registry the collectors are registered on.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// NewManager creates a manager on a fresh registry unless one is supplied.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "wellness",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.analyses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "analyses_total",
		Help:      "Wellness analyses run, by analysis and outcome",
	}, []string{"analysis", "outcome"})

	m.analysisLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Wellness analysis duration in seconds, including data loading",
		Buckets:   m.histogramBuckets,
	}, []string{"analysis"})

	m.readingsIngested = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "readings_ingested_total",
		Help:      "Sensor readings stored, by source",
	}, []string{"source"})

	m.coachingRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "coaching_requests_total",
		Help:      "LLM coaching requests, by outcome",
	}, []string{"outcome"})
}

// RecordHTTPRequest records a finished HTTP request. The Record methods are
// no-ops on a nil Manager.
func (m *Manager) RecordHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordAnalysis records one analysis run. outcome is "ok", "no_data" or "error".
func (m *Manager) RecordAnalysis(analysis, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(analysis, outcome).Inc()
	m.analysisLatency.WithLabelValues(analysis).Observe(elapsed.Seconds())
}

// RecordReadingsIngested counts stored readings.
func (m *Manager) RecordReadingsIngested(source string, n int) {
	if m == nil {
		return
	}
	m.readingsIngested.WithLabelValues(source).Add(float64(n))
}

// RecordCoaching counts a coaching request outcome.
func (m *Manager) RecordCoaching(outcome string) {
	if m == nil {
		return
	}
	m.coachingRequests.WithLabelValues(outcome).Inc()
}

// Registry exposes the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
