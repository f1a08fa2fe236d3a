package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger logs one line per request once the handler chain has run.
func Logger() gin.HandlerFunc {
	logger := zap.S().Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			logger.Errorw("request failed", append(fields, "errors", c.Errors.String())...)
			return
		}
		if c.Writer.Status() >= 500 {
			logger.Warnw("request", fields...)
			return
		}
		logger.Debugw("request", fields...)
	}
}
