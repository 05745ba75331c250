package middleware

import (
	"strconv"
	"time"

	"tripcheckout/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies. Unmatched routes share one
// path label.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
