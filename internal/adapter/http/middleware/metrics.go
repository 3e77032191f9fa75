package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Custom registry to avoid default Go metrics.
var metricsRegistry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(metricsRegistry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serviciosjt",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	httpRequestDuration = promauto.With(metricsRegistry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "serviciosjt",
			Subsystem: "api",
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
)

// Metrics records per-route request counts and latency. Routes are
// labelled by their registered pattern, not the raw path, to keep
// cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsedMs := float64(time.Since(start)) / float64(time.Millisecond)

		httpRequests.WithLabelValues(endpoint, c.Request.Method, status).Inc()
		httpRequestDuration.WithLabelValues(endpoint, c.Request.Method, status).Observe(elapsedMs)
	}
}

// MetricsHandler exposes the registry in Prometheus text format.
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
