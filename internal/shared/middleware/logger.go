package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	sharedContext "github.com/changhyeonkim/format-check/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
)

// HealthPath requests are logged at debug so probes do not flood the access log
const HealthPath = "/health"

// LoggerMiddleware binds a request-scoped logger (request_id) to the request context
// and writes one access log line per request once the handler chain is done.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.String("latency", time.Since(start).String()),
			slog.String("ip", c.ClientIP()),
			slog.String("userAgent", c.Request.UserAgent()),
		}
		if raw != "" {
			attrs = append(attrs, slog.String("query", raw))
		}
		if memberID, ok := sharedContext.GetMemberID(c); ok {
			attrs = append(attrs, slog.Any("member_id", memberID))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}

		reqLogger.LogAttrs(c.Request.Context(), accessLevel(path, status), "Request processed", attrs...)
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case path == HealthPath:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
