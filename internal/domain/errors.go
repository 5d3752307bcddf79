package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the itinerary search engine.
// Callers match these with errors.Is.
var (
	// ErrInvalidRequest indicates the search criteria failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownAirport indicates a timestamp was normalized against an
	// airport code absent from the directory. It aborts the computation of
	// the one flight sequence that triggered it, never the whole search.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrDatasetNotLoaded indicates no dataset snapshot has been published yet.
	ErrDatasetNotLoaded = errors.New("flight dataset not loaded")
)

// UnknownAirportError wraps ErrUnknownAirport with the offending code.
type UnknownAirportError struct {
	// Code is the airport code that was not found in the directory
	Code string
}

// NewUnknownAirportError creates an UnknownAirportError for the given code.
func NewUnknownAirportError(code string) *UnknownAirportError {
	return &UnknownAirportError{Code: code}
}

// Error implements the error interface.
func (e *UnknownAirportError) Error() string {
	return fmt.Sprintf("unknown airport: %s", e.Code)
}

// Is makes errors.Is(err, ErrUnknownAirport) match.
func (e *UnknownAirportError) Is(target error) bool {
	return target == ErrUnknownAirport
}
