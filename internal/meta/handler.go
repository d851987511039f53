package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/validator"
)

const healthTimeout = 5 * time.Second

// Pinger is the part of database.DB the health check needs
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthResponse struct {
	Status  string        `json:"status"` // healthy | unhealthy
	Service ServiceInfo  `json:"service"`
	Checks  HealthChecks `json:"checks"`
}

type ServiceInfo struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
}

type HealthChecks struct {
	Database DatabaseCheck `json:"database"`
	Rules    RulesCheck    `json:"rules"`
}

type DatabaseCheck struct {
	Status    string `json:"status"` // up | down
	Driver    string `json:"driver"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type RulesCheck struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Handler serves GET /health
type Handler struct {
	cfg *config.Config
	db  Pinger
}

func NewHandler(cfg *config.Config, db Pinger) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health pings the database and reports the loaded rule count. 503 when the database is down.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	response := HealthResponse{
		Status: "healthy",
		Service: ServiceInfo{
			Name:        h.cfg.App.Name,
			Environment: h.cfg.App.Env,
		},
		Checks: HealthChecks{
			Database: DatabaseCheck{Status: "up", Driver: h.cfg.Database.Driver},
			Rules:    RulesCheck{Status: "up", Count: len(validator.Rules())},
		},
	}

	start := time.Now()
	err := h.db.HealthCheck(ctx)
	response.Checks.Database.LatencyMs = time.Since(start).Milliseconds()

	if err != nil {
		logger.FromContext(ctx).Error("Health check 실패", "error", err)
		response.Status = "unhealthy"
		response.Checks.Database.Status = "down"
		response.Checks.Database.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
