package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// StatusResponse represents the root status endpoint response.
type StatusResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Status writes the service status response.
func Status(c echo.Context, message string, uptimeSeconds int64) error {
	return c.JSON(http.StatusOK, &StatusResponse{
		Message:       message,
		Status:        "running",
		UptimeSeconds: uptimeSeconds,
	})
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
