package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/middleware"
)

// Bootstrap handles common server setup
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with the common middleware chain
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Debug mode only for local/dev
	if b.cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.LoggerMiddleware())
	engine.Use(middleware.BodyLimit(b.cfg.Server.MaxBodyBytes))
	engine.Use(middleware.Timeout(b.cfg.Server.RequestTimeout))

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", fmt.Sprint(recovered),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(sharedError.InternalServerError.Status, sharedError.InternalServerError)
}
