package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the itinerary search endpoints onto the Echo instance.
// The status and health endpoints live at the root for load balancers; the
// API itself is versioned under /api/v1.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler) {
	e.GET("/", h.Status)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/search", h.Search)
	api.GET("/airports", h.ListAirports)
}
