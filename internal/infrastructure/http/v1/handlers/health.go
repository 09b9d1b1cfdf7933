package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	appName string
	version string
	started time.Time
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(appName, version string) *HealthHandler {
	return &HealthHandler{
		appName: appName,
		version: version,
		started: time.Now(),
	}
}

// Live handles the liveness probe.
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles the readiness probe. Storage is in-process, so ready
// follows live.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"storage": "healthy",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":            h.appName,
		"version":        h.version,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}
