package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Pinger checks that a dependency is reachable
type Pinger func(ctx context.Context) error

// HealthController defines the liveness handler
type HealthController interface {
	// Check reports whether the service and its database are up
	Check(c *gin.Context)
}

type healthController struct {
	service string
	pingDB  Pinger
	timeout time.Duration
}

// NewHealthController creates a HealthController reporting service; pingDB is bounded by a 2s timeout
func NewHealthController(service string, pingDB Pinger) HealthController {
	return &healthController{service: service, pingDB: pingDB, timeout: 2 * time.Second}
}

// Check godoc
// @Summary Health check
// @Description Check if the service is running and its database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *healthController) Check(ctx *gin.Context) {
	status, database, code := "healthy", "up", http.StatusOK

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), h.timeout)
	defer cancel()
	if err := h.pingDB(pingCtx); err != nil {
		log.WithError(err).Warn("Health check database ping failed")
		status, database, code = "unhealthy", "down", http.StatusServiceUnavailable
	}

	ctx.JSON(code, gin.H{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.service,
	})
}
