package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "stayhub"

var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route and method",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

func init() { prometheus.MustRegister(reqTotal, reqDuration) }

// Metrics records one counter increment and one latency observation per
// request. Unmatched routes fall back to the raw path so 404s still show up.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		method := c.Request.Method
		reqTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
