package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"harvest-admin.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latency. The route template
// (":id" form) is used instead of the raw path to keep cardinality bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
