package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
)

// Timeout puts a deadline on the request context. Handlers and the database layer
// observe it through ctx. If the deadline passed and the handler wrote nothing,
// the client gets RequestTimeout.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logger.FromContext(ctx).Warn("Request deadline exceeded",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"timeout", timeout.String(),
			"written", c.Writer.Written(),
		)
		if !c.Writer.Written() {
			c.AbortWithStatusJSON(sharedError.RequestTimeout.Status, sharedError.RequestTimeout)
		}
	}
}
