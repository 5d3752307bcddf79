// Package dataset loads the flight dataset and publishes it as immutable
// snapshots. A snapshot is one fully-built generation of the airport
// directory, flight catalog, and connection graph; searches read a single
// generation without coordination, and a reload builds a new snapshot off
// to the side before atomically swapping it in.
package dataset

import (
	"github.com/rs/zerolog"

	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/graph"
)

// Snapshot is one immutable generation of the loaded dataset.
// None of its fields are mutated after NewSnapshot returns.
type Snapshot struct {
	// Directory maps airport codes to airport metadata
	Directory domain.AirportDirectory

	// Catalog is the full set of scheduled flights
	Catalog domain.FlightCatalog

	// Graph is the connection graph derived from the catalog
	Graph *graph.ConnectionGraph
}

// NewSnapshot builds a snapshot from raw airport and flight records.
// Data-integrity problems (a flight referencing an airport absent from the
// directory, or a flight with equal origin and destination) are logged as
// warnings, not errors: such flights stay in the catalog and remain
// eligible for direct-flight matching, but contribute no graph edges and
// never validate as connections.
func NewSnapshot(airports []domain.Airport, flights []domain.Flight, log zerolog.Logger) *Snapshot {
	directory := domain.NewAirportDirectory(airports)
	catalog := domain.FlightCatalog(flights)

	for _, f := range catalog {
		if f.Origin == f.Destination {
			log.Warn().
				Str("flight_number", f.FlightNumber).
				Str("airport", f.Origin).
				Msg("Flight has identical origin and destination")
			continue
		}
		if !directory.Contains(f.Origin) {
			log.Warn().
				Str("flight_number", f.FlightNumber).
				Str("airport", f.Origin).
				Msg("Flight references unknown origin airport")
		}
		if !directory.Contains(f.Destination) {
			log.Warn().
				Str("flight_number", f.FlightNumber).
				Str("airport", f.Destination).
				Msg("Flight references unknown destination airport")
		}
	}

	return &Snapshot{
		Directory: directory,
		Catalog:   catalog,
		Graph:     graph.Build(catalog, directory),
	}
}
