package middleware

import (
	"strconv"
	"time"

	"discuss/internal/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics 记录每个路由的请求数与耗时
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
