package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dashboard_http_requests_total",
	Help: "HTTP requests served, by route and status",
}, []string{"method", "route", "status"})

var requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dashboard_http_request_duration_seconds",
	Help:    "HTTP request latency, by route",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

// Metrics records request counts and latencies keyed by the matched route,
// so ids in paths do not blow up label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestCount.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
