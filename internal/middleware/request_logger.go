package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request id assigned by RequestLogger.
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns each request a uuid, logs it with structured
// fields, and classes the completion log level by status code.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      rawQuery,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
		}

		if rawUA := c.Request.UserAgent(); rawUA != "" {
			ua := user_agent.New(rawUA)
			browser, version := ua.Browser()
			fields["browser"] = browser
			fields["browser_version"] = version
			fields["os"] = ua.OS()
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}
