package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"featurevote/src/core/metrics"
)

// Metrics records per-request duration and count, labeled by the route
// template (not the raw path, to keep label cardinality bounded).
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), start)
	}
}
