package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamwire/ssekit/logger"
)

// RequestLogger returns a Gin middleware that logs every request with
// method, path, status code, and duration. Probe paths are silently
// skipped. Long-lived stream requests log once, on disconnect.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isProbeEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        path,
			"status":      status,
			"duration_ms": latency.Milliseconds(),
			"client":      c.ClientIP(),
		}
		if id := c.GetString("request_id"); id != "" {
			fields["request_id"] = id
		}

		logByStatus(log, fields, status)
	}
}

func isProbeEndpoint(path string) bool {
	switch path {
	case "/health", "/alive", "/ready", "/metrics":
		return true
	}
	return false
}

// logByStatus logs request fields at a level matching the HTTP status.
// If log is nil the global logger is used.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	logErr := logger.Error
	logWarn := logger.Warn
	logInfo := logger.Info
	if log != nil {
		logErr = log.Error
		logWarn = log.Warn
		logInfo = log.Info
	}

	switch {
	case status >= 500:
		logErr("Request completed", fields)
	case status >= 400:
		logWarn("Request completed", fields)
	default:
		logInfo("Request completed", fields)
	}
}
