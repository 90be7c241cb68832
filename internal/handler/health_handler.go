package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/catalog"
)

// HealthHandler answers health probes. Readiness means the catalog dataset
// was loaded and passed validation; the server never starts without that, so
// a running process with a dataset is ready by construction.
type HealthHandler struct {
	ds *catalog.Dataset
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ds *catalog.Dataset) *HealthHandler {
	return &HealthHandler{ds: ds}
}

// Ping basic health check
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness readiness check
// @Summary Readiness
// @Description Reports whether the catalog dataset is loaded
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if h.ds == nil {
		c.JSON(503, utils.H{
			"status":  "not_ready",
			"catalog": "unloaded",
		})
		return
	}

	c.JSON(200, utils.H{
		"status":     "ready",
		"catalog":    "loaded",
		"categories": len(h.ds.Categories()),
		"codes":      len(h.ds.Codes()),
		"agents":     len(h.ds.Agents()),
	})
}

// Liveness liveness check
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
