// Package integration provides helpers and integration tests for the
// itinerary search service. Integration tests exercise the full stack from
// the HTTP layer through the search engine against a real dataset snapshot.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/skypath/itinerary-search/internal/adapter/http"
	"github.com/skypath/itinerary-search/internal/dataset"
	"github.com/skypath/itinerary-search/internal/infrastructure/timeutil"
	"github.com/skypath/itinerary-search/internal/usecase"
	"github.com/skypath/itinerary-search/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
	Store   *dataset.Store
}

// NewTestServer creates a test server backed by the testdata dataset.
func NewTestServer(t *testing.T, config *usecase.Config) *TestServer {
	t.Helper()

	store := dataset.NewStore()
	snap, err := dataset.Parse(testutil.LoadTestJSON(t, "flights.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to build dataset snapshot: %v", err)
	}
	store.Publish(snap)

	return newTestServer(store, config)
}

// NewEmptyTestServer creates a test server whose store has no published
// snapshot, for exercising the not-loaded path.
func NewEmptyTestServer() *TestServer {
	return newTestServer(dataset.NewStore(), nil)
}

func newTestServer(store *dataset.Store, config *usecase.Config) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	uc := usecase.NewItinerarySearch(store, config)
	handler := httpAdapter.NewItineraryHandler(uc, store, timeutil.NewRealClock())
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Store:   store,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   body,
	})
}

// AirportsRequest fetches the airport list.
func (ts *TestServer) AirportsRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/airports",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search response DTO.
func (r Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// DefaultSearchRequest returns a valid search request matching the
// testdata dataset's schedule date.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "JFK",
		Destination: "LAX",
		Date:        "2025-03-15",
	}
}
