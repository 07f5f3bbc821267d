package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ndavydov/storefront/internal/metrics"
)

// CollectMetrics records request counts and latency.
func CollectMetrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		collector.RecordRequest(c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
