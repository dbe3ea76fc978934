package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestID tags every request with a correlation id, echoed back in
// the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs one line per completed request. Credentials never
// reach the log: header dumps are debug-only and scrubbed first.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if log.Core().Enabled(zapcore.DebugLevel) {
			log.Debug("incoming request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("headers", scrub(c.Request.Header)),
			)
		}

		ts := time.Now()
		c.Next()

		latency := time.Since(ts)
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString("requestID")),
		}

		for _, e := range c.Errors {
			log.Error("handler error",
				zap.Error(e),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString("requestID")),
			)
		}

		switch {
		case status >= 500:
			log.Error("request completed", fields...)
		case status >= 400:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}

func scrub(h http.Header) http.Header {
	clone := h.Clone()
	for k := range clone {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "authorization") || strings.Contains(lk, "cookie") {
			clone[k] = []string{"[redacted]"}
		}
	}
	return clone
}
