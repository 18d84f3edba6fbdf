// Package metrics exposes Prometheus metrics for HTTP traffic and upstream
// completion calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/grammar-assistant/internal/config"
)

// Buckets tuned for LLM round trips (100ms to 30s).
var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

// Collector owns a private registry with every metric the service exports.
//
// Metrics:
//   - <ns>_http_requests_total{method,route,status}
//   - <ns>_http_request_duration_seconds{method,route}
//   - <ns>_completion_requests_total{model,outcome}
//   - <ns>_completion_duration_seconds{model}
type Collector struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	completionRequests *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
}

// NewCollector creates a collector and registers its metrics, plus the Go
// runtime and process collectors, on a fresh registry.
func NewCollector(cfg config.MetricsConfig) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,

		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),

		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   latencyBuckets,
			},
			[]string{"method", "route"},
		),

		completionRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "completion_requests_total",
				Help:      "Total number of chat-completion calls by model and outcome",
			},
			[]string{"model", "outcome"},
		),

		completionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "completion_duration_seconds",
				Help:      "Chat-completion call duration in seconds",
				Buckets:   latencyBuckets,
			},
			[]string{"model"},
		),
	}

	registry.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.completionRequests,
		c.completionDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// ObserveCompletion records one completion call.
func (c *Collector) ObserveCompletion(model, outcome string, duration time.Duration) {
	c.completionRequests.WithLabelValues(model, outcome).Inc()
	c.completionDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// ObserveHTTP records one served HTTP request. route should be the matched
// mux pattern, not the raw path, to keep cardinality bounded.
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		Registry:      c.registry,
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }
