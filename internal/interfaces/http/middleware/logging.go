package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/prometheus"
)

// RequestLogging logs one structured line per request and feeds the HTTP
// metrics.  Metrics may be nil in the CLI.
func RequestLogging(log logging.Logger, metrics *prometheus.AppMetrics) gin.HandlerFunc {
	if log == nil {
		log = logging.NewNopLogger()
	}
	log = log.Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		if metrics != nil {
			metrics.HTTPActiveRequests.WithLabelValues(c.Request.Method).Inc()
		}

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		if metrics != nil {
			metrics.HTTPActiveRequests.WithLabelValues(c.Request.Method).Dec()
			prometheus.RecordHTTPRequest(metrics, c.Request.Method, path, status, elapsed)
		}

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("request_id", c.GetString(ContextKeyRequestID)),
			logging.String("client_ip", c.ClientIP()),
		}
		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}
