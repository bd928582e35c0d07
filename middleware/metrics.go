package middleware

import (
	"context"
	"time"

	aws_pkg "sportsstore-service/pkg/aws"

	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and error counts per route.
func Metrics(recorder aws_pkg.MetricsRecorder, serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if recorder == nil || !recorder.IsEnabled() {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		dims := map[string]string{
			"Service": serviceName,
			"Method":  c.Request.Method,
			"Path":    path,
			"Status":  statusCodeToRange(status),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_ = recorder.RecordCount(ctx, aws_pkg.MetricHTTPRequests, dims)
			_ = recorder.RecordLatency(ctx, aws_pkg.MetricHTTPLatency, duration, dims)
			if status >= 400 {
				_ = recorder.RecordCount(ctx, aws_pkg.MetricHTTPErrors, dims)
				if status < 500 {
					_ = recorder.RecordCount(ctx, aws_pkg.MetricHTTP4xx, dims)
				} else {
					_ = recorder.RecordCount(ctx, aws_pkg.MetricHTTP5xx, dims)
				}
			}
		}()
	}
}

func statusCodeToRange(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
