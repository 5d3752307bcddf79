// Package http provides the HTTP handler layer for the itinerary search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"time"

	"github.com/skypath/itinerary-search/internal/domain"
)

// SearchRequest represents the request body for itinerary search.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// Date is the travel date in YYYY-MM-DD format
	Date string `json:"date"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any validation errors were collected.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts the errors to a field -> message map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// Validate checks the request fields, collecting every failure rather than
// stopping at the first one. Returns nil when the request is valid.
func (r *SearchRequest) Validate() error {
	errs := &ValidationErrors{}

	switch {
	case r.Origin == "":
		errs.Add("origin", "origin is required")
	case !airportCodePattern.MatchString(r.Origin):
		errs.Add("origin", "origin must be a valid 3-letter IATA code")
	}

	switch {
	case r.Destination == "":
		errs.Add("destination", "destination is required")
	case !airportCodePattern.MatchString(r.Destination):
		errs.Add("destination", "destination must be a valid 3-letter IATA code")
	}

	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	switch {
	case r.Date == "":
		errs.Add("date", "date is required")
	case !datePattern.MatchString(r.Date):
		errs.Add("date", "date must be in YYYY-MM-DD format")
	default:
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			errs.Add("date", "date is not a valid calendar date")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateKnownAirports checks that both requested codes exist in the
// active airport directory. Returns nil when both are known.
func validateKnownAirports(directory domain.AirportDirectory, r *SearchRequest) error {
	errs := &ValidationErrors{}

	if !directory.Contains(r.Origin) {
		errs.Add("origin", "unknown origin airport code")
	}
	if !directory.Contains(r.Destination) {
		errs.Add("destination", "unknown destination airport code")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToDomainCriteria converts the request to domain search criteria.
func ToDomainCriteria(r *SearchRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:      r.Origin,
		Destination: r.Destination,
		Date:        r.Date,
	}
}
