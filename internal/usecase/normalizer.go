// Package usecase contains the business logic for itinerary search:
// timezone normalization, route combination, itinerary assembly, ranking,
// and the search orchestration that ties them together.
package usecase

import (
	"fmt"
	"time"

	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/infrastructure/timeutil"
)

// Local timestamp layouts accepted in flight data. Timestamps carry no UTC
// offset; the owning airport's timezone supplies it.
const (
	localLayoutSeconds = "2006-01-02T15:04:05"
	localLayoutMinutes = "2006-01-02T15:04"
)

// minutesPerDay is the wrap-around correction applied when a computed
// duration comes out negative (day-crossing data without a full date).
const minutesPerDay = 24 * 60

// TimeNormalizer converts a flight's local departure/arrival timestamp into
// an absolute UTC instant using the owning airport's IANA timezone. All
// duration and layover arithmetic in the engine goes through it; two local
// timestamps are never compared directly, since origin and destination may
// sit in different zones and even one zone can have differing UTC offsets
// (DST) on different flights.
type TimeNormalizer struct {
	directory domain.AirportDirectory
}

// NewTimeNormalizer creates a TimeNormalizer over the given directory.
func NewTimeNormalizer(directory domain.AirportDirectory) *TimeNormalizer {
	return &TimeNormalizer{directory: directory}
}

// Normalize converts a naive local timestamp at the given airport to UTC.
// Returns an UnknownAirportError when the code is absent from the directory.
func (n *TimeNormalizer) Normalize(localTimestamp, airportCode string) (time.Time, error) {
	airport, ok := n.directory.Lookup(airportCode)
	if !ok {
		return time.Time{}, domain.NewUnknownAirportError(airportCode)
	}

	local, err := parseLocalTimestamp(localTimestamp, airport.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return local.UTC(), nil
}

// Duration computes the minutes between a local departure at one airport
// and a local arrival at another, normalizing both endpoints to UTC first.
// A negative result gets a +1440 minute wrap-around correction; this is a
// heuristic safety net for day-crossing data without a proper date, not a
// general multi-day fix.
func (n *TimeNormalizer) Duration(departureLocal, departureAirport, arrivalLocal, arrivalAirport string) (int, error) {
	departure, err := n.Normalize(departureLocal, departureAirport)
	if err != nil {
		return 0, err
	}
	arrival, err := n.Normalize(arrivalLocal, arrivalAirport)
	if err != nil {
		return 0, err
	}

	minutes := int(arrival.Sub(departure).Minutes())
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutes, nil
}

// FlightDuration computes the normalized flight time of a single flight.
func (n *TimeNormalizer) FlightDuration(f domain.Flight) (int, error) {
	return n.Duration(f.DepartureTime, f.Origin, f.ArrivalTime, f.Destination)
}

// NaiveDuration computes minutes between two local timestamps without any
// timezone lookup, treating both as the same zone. It backs the direct-flight
// pass for flights whose airports are absent from the directory, where
// normalization is impossible but the flight is still a valid direct match.
func NaiveDuration(departureLocal, arrivalLocal string) (int, error) {
	departure, err := parseLocalTimestamp(departureLocal, timeutil.UTC)
	if err != nil {
		return 0, err
	}
	arrival, err := parseLocalTimestamp(arrivalLocal, timeutil.UTC)
	if err != nil {
		return 0, err
	}

	minutes := int(arrival.Sub(departure).Minutes())
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutes, nil
}

// parseLocalTimestamp parses a naive local timestamp in the given zone,
// accepting both with- and without-seconds layouts.
func parseLocalTimestamp(value, timezone string) (time.Time, error) {
	if t, err := timeutil.ParseInTimezone(localLayoutSeconds, value, timezone); err == nil {
		return t, nil
	}
	t, err := timeutil.ParseInTimezone(localLayoutMinutes, value, timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid local timestamp %q: %w", value, err)
	}
	return t, nil
}
