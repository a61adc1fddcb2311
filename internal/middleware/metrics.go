// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/metrics"
)

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP
// requests by method, route and status. The metrics endpoint and websocket
// upgrades are not observed; a progress stream lives as long as its job.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "/metrics" || strings.HasSuffix(path, "/ws") {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// unmatched routes would otherwise explode label cardinality
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
