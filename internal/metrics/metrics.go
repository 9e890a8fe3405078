// Package metrics exposes the site's Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/content"
)

// Namespace prefixes every metric.
const Namespace = "portfolio"

// Metrics holds the site's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Content
	ContentLoads       *prometheus.CounterVec
	ContentArticles    *prometheus.GaugeVec
	ContentLoadSeconds *prometheus.HistogramVec

	// Contact
	ContactSubmissions *prometheus.CounterVec

	// HTTP
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on a fresh registry, together with
// the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	m := &Metrics{registry: reg}

	m.ContentLoads = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "content",
			Name:      "loads_total",
			Help:      "Content loads by resource and the source that served them",
		},
		[]string{"resource", "source"},
	)
	m.ContentArticles = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "content",
			Name:      "articles",
			Help:      "Articles held per resource",
		},
		[]string{"resource"},
	)
	m.ContentLoadSeconds = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "content",
			Name:      "load_duration_seconds",
			Help:      "Time to load a resource, including fallback",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"resource"},
	)

	m.ContactSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by delivery channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	m.RequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	m.RequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	return m
}

// Registry returns the registry the metrics live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordContentLoad implements content.Recorder.
func (m *Metrics) RecordContentLoad(resource string, source content.Source, count int, took time.Duration) {
	m.ContentLoads.WithLabelValues(resource, string(source)).Inc()
	m.ContentArticles.WithLabelValues(resource).Set(float64(count))
	m.ContentLoadSeconds.WithLabelValues(resource).Observe(took.Seconds())
}

// RecordContactSubmission implements contact.Recorder.
func (m *Metrics) RecordContactSubmission(channel, outcome string) {
	m.ContactSubmissions.WithLabelValues(channel, outcome).Inc()
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
