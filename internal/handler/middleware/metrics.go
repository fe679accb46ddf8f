package middleware

import (
	"time"

	"groupbuy-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per matched route template, so
// path parameters do not blow up label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
