package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Check reports whether one dependency is usable.
type Check func(ctx context.Context) error

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: liveness, always 200 while the process serves requests.
//   - /readyz: readiness, 200 only when every registered dependency check passes.
type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewHealthHandler constructs a HealthHandler. checks maps a dependency name
// (e.g. "postgres") to its probe; nil probes are ignored.
func NewHealthHandler(checks map[string]Check) *HealthHandler {
	hc := make(map[string]Check, len(checks))
	for name, fn := range checks {
		if fn != nil {
			hc[name] = fn
		}
	}
	return &HealthHandler{checks: hc, timeout: 2 * time.Second}
}

// Register mounts GET /healthz and GET /readyz on r.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Always returns OK if the service is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness godoc
// @Summary      Readiness probe
// @Description  Returns ready if the service dependencies are reachable, with the state of each
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]string, len(names))
	ready := true
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			deps[name] = err.Error()
			ready = false
			continue
		}
		deps[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": deps})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "dependencies": deps})
}
