package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for an itinerary search request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// Date is the desired travel date in YYYY-MM-DD format.
	// Flights match when their origin-local departure date equals it.
	Date string `json:"date"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.Date) {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.Date)
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("%w: date is not a valid calendar date: %s", ErrInvalidRequest, s.Date)
	}

	return nil
}
