// Package domain contains the core business entities and rules for the itinerary search engine.
// These entities are transport-agnostic and form the foundation upon which all other components are built.
package domain

import "sort"

// Airport represents a single airport in the loaded dataset.
// Airports are immutable after load and referenced by flights via their code.
type Airport struct {
	// Code is the 3-letter IATA airport code (e.g., "JFK"). It is the unique key.
	Code string `json:"code"`

	// Name is the full airport name (e.g., "John F. Kennedy International Airport")
	Name string `json:"name"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country the airport is located in.
	// Connection rules use this to classify layovers as domestic or international.
	Country string `json:"country"`

	// Timezone is the IANA timezone name (e.g., "America/New_York").
	// Flight timestamps are local wall-clock times in this zone.
	Timezone string `json:"timezone"`
}

// AirportDirectory is a lookup from airport code to airport metadata.
// It is built once at dataset load time and is read-only afterwards.
type AirportDirectory map[string]Airport

// NewAirportDirectory builds a directory from a slice of airports.
// Later entries with a duplicate code overwrite earlier ones.
func NewAirportDirectory(airports []Airport) AirportDirectory {
	dir := make(AirportDirectory, len(airports))
	for _, a := range airports {
		dir[a.Code] = a
	}
	return dir
}

// Lookup returns the airport for the given code and whether it exists.
func (d AirportDirectory) Lookup(code string) (Airport, bool) {
	a, ok := d[code]
	return a, ok
}

// Contains reports whether the directory knows the given airport code.
func (d AirportDirectory) Contains(code string) bool {
	_, ok := d[code]
	return ok
}

// List returns all airports ordered by code.
// The ordering makes responses deterministic across calls.
func (d AirportDirectory) List() []Airport {
	airports := make([]Airport, 0, len(d))
	for _, a := range d {
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool {
		return airports[i].Code < airports[j].Code
	})
	return airports
}
