package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skypath/itinerary-search/internal/adapter/http/response"
	"github.com/skypath/itinerary-search/internal/dataset"
	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/infrastructure/timeutil"
	"github.com/skypath/itinerary-search/internal/usecase"
)

// ServiceName is reported by the root status endpoint.
const ServiceName = "SkyPath Itinerary Search API"

// ItineraryHandler handles HTTP requests for itinerary search endpoints.
type ItineraryHandler struct {
	useCase   usecase.ItinerarySearch
	store     *dataset.Store
	clock     timeutil.Clock
	startedAt int64
}

// NewItineraryHandler creates an ItineraryHandler with the given use case.
// The store backs request-level airport validation against the active
// directory; the clock drives the uptime figure on the status endpoint.
func NewItineraryHandler(uc usecase.ItinerarySearch, store *dataset.Store, clock timeutil.Clock) *ItineraryHandler {
	return &ItineraryHandler{
		useCase:   uc,
		store:     store,
		clock:     clock,
		startedAt: clock.Now().Unix(),
	}
}

// Search handles POST /api/v1/search
//
// @Summary Search itineraries
// @Description Search direct and connecting itineraries (up to two stops) between two airports on a date
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Dataset not loaded"
// @Router /search [post]
func (h *ItineraryHandler) Search(c echo.Context) error {
	var req SearchRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// Syntactic checks pass; the codes must also exist in the loaded
	// directory. Flights referencing unknown airports stay eligible for
	// direct matching inside the engine, but an unknown code in the
	// request itself is a client error.
	snap, err := h.store.Snapshot()
	if err != nil {
		return h.handleError(c, err)
	}
	if err := validateKnownAirports(snap.Directory, &req); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// ListAirports handles GET /api/v1/airports
//
// @Summary List airports
// @Description List every airport in the loaded dataset
// @Tags airports
// @Produce json
// @Success 200 {array} AirportDTO
// @Failure 503 {object} response.ErrorDetail "Dataset not loaded"
// @Router /airports [get]
func (h *ItineraryHandler) ListAirports(c echo.Context) error {
	airports, err := h.useCase.ListAirports(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToAirportDTOs(airports))
}

// Status handles GET /
// Reports the service name, running state, and uptime.
func (h *ItineraryHandler) Status(c echo.Context) error {
	uptime := h.clock.Now().Unix() - h.startedAt
	return response.Status(c, ServiceName, uptime)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrDatasetNotLoaded) {
		return response.DatasetNotLoaded(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}
