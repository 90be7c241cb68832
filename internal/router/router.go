package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/handler"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	catalogHandler *handler.CatalogHandler,
	sessionHandler *handler.SessionHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes - the catalog is read-only, there is no write path
	apiV1 := h.Group("/api/v1")
	{
		// Catalog reads
		apiV1.GET("/categories", catalogHandler.ListCategories)
		apiV1.GET("/categories/counts", catalogHandler.CategoryCounts)
		apiV1.GET("/codes", catalogHandler.ListCodes)
		apiV1.GET("/codes/:code", catalogHandler.GetCode)
		apiV1.GET("/agents", catalogHandler.ListAgents)
		apiV1.GET("/agents/top", catalogHandler.TopRanked)

		// Browsing sessions: lifecycle plus view-state transitions
		sessions := apiV1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.Create)
			sessions.GET("/:id", sessionHandler.Get)
			sessions.PUT("/:id/code", sessionHandler.SelectCode)
			sessions.PUT("/:id/search", sessionHandler.Search)
			sessions.PATCH("/:id/facets", sessionHandler.UpdateFacets)
			sessions.DELETE("/:id/facets", sessionHandler.ClearFacets)
			sessions.DELETE("/:id", sessionHandler.Delete)
		}
	}
}
