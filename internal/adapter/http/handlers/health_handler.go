package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by every backing store the health endpoint reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthCheckTimeout = 5 * time.Second

// HealthHandler reports liveness and the reachability of the backing stores.
// The read model is optional; a nil readModel skips its check.
type HealthHandler struct {
	db        Pinger
	readModel Pinger
}

func NewHealthHandler(db, readModel Pinger) *HealthHandler {
	return &HealthHandler{db: db, readModel: readModel}
}

// Health reports the overall service health with a per-dependency breakdown.
//
// @Summary      Health check
// @Tags         Health
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = gin.H{"status": "down", "error": err.Error()}
		healthy = false
	} else {
		checks["database"] = gin.H{"status": "up"}
	}

	if h.readModel != nil {
		if err := h.readModel.Ping(ctx); err != nil {
			checks["readModel"] = gin.H{"status": "down", "error": err.Error()}
			healthy = false
		} else {
			checks["readModel"] = gin.H{"status": "up"}
		}
	}

	status := http.StatusOK
	overall := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":    overall,
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready reports whether the service can take traffic. Only the primary
// database gates readiness.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live always answers 200 while the process is up.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
