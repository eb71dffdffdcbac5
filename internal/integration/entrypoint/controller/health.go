// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	checks map[string]HealthCheck
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. checks maps
// a dependency name (database, cache, storage) to its probe.
func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		checks: checks,
	}
}

// Check handles GET /health requests.
// The API is degraded, and answers 503, when any dependency probe fails.
func (h *HealthController) Check(c *gin.Context) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(names)),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK

	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		err := h.checks[name](ctx)
		cancel()

		if err != nil {
			response.Dependencies[name] = "disconnected"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Dependencies[name] = "connected"
	}

	c.JSON(status, response)
}
