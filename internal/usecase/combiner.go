package usecase

import (
	"github.com/skypath/itinerary-search/internal/domain"
)

// Connection-feasibility bounds in minutes. A layover shorter than the
// minimum (including negative, i.e. the next flight departs before the
// previous one lands) or longer than the maximum rejects the connection.
const (
	// MinDomesticLayoverMinutes is the minimum connection time when all
	// four endpoint airports share one country.
	MinDomesticLayoverMinutes = 45

	// MinInternationalLayoverMinutes is the minimum connection time for
	// any connection that is not domestic.
	MinInternationalLayoverMinutes = 90

	// MaxLayoverMinutes is the maximum acceptable connection time.
	MaxLayoverMinutes = 360
)

// DefaultMaxRouteCombinations caps the valid flight sequences retained per
// route, in first-found cross-product order. It bounds combinatorial
// blow-up on dense routes; it is not a "best N" selection.
const DefaultMaxRouteCombinations = 10

// Combiner finds, for a route and a date, every valid way of picking one
// scheduled flight per route segment.
type Combiner struct {
	catalog    domain.FlightCatalog
	directory  domain.AirportDirectory
	normalizer *TimeNormalizer
	maxPerRoute int
}

// NewCombiner creates a Combiner over one dataset generation.
// maxPerRoute values below 1 fall back to DefaultMaxRouteCombinations.
func NewCombiner(catalog domain.FlightCatalog, directory domain.AirportDirectory, normalizer *TimeNormalizer, maxPerRoute int) *Combiner {
	if maxPerRoute < 1 {
		maxPerRoute = DefaultMaxRouteCombinations
	}
	return &Combiner{
		catalog:     catalog,
		directory:   directory,
		normalizer:  normalizer,
		maxPerRoute: maxPerRoute,
	}
}

// Combinations returns every valid flight sequence along the given route
// (a sequence of airport codes) on the given date, capped at the per-route
// limit. A route with any segment lacking candidate flights is infeasible
// and yields nil. Sequences are produced in cross-product enumeration
// order, earlier segments varying slowest.
func (c *Combiner) Combinations(route []string, date string) [][]domain.Flight {
	if len(route) < 2 {
		return nil
	}

	segments := make([][]domain.Flight, 0, len(route)-1)
	for i := 0; i < len(route)-1; i++ {
		candidates := c.catalog.FindByRoute(route[i], route[i+1], date)
		if len(candidates) == 0 {
			return nil
		}
		segments = append(segments, candidates)
	}

	var valid [][]domain.Flight
	current := make([]domain.Flight, 0, len(segments))

	var pick func(segment int)
	pick = func(segment int) {
		if len(valid) >= c.maxPerRoute {
			return
		}
		if segment == len(segments) {
			sequence := make([]domain.Flight, len(current))
			copy(sequence, current)
			valid = append(valid, sequence)
			return
		}
		for _, f := range segments[segment] {
			if len(current) > 0 && !c.connectionFeasible(current[len(current)-1], f) {
				continue
			}
			current = append(current, f)
			pick(segment + 1)
			current = current[:len(current)-1]
			if len(valid) >= c.maxPerRoute {
				return
			}
		}
	}
	pick(0)

	return valid
}

// connectionFeasible validates the connection between an arriving flight a
// and a departing flight b at their shared airport.
func (c *Combiner) connectionFeasible(a, b domain.Flight) bool {
	if a.Destination != b.Origin {
		return false
	}

	// All four endpoint airports must be known; without metadata the
	// layover timezone and country cannot be validated, so the connection
	// is infeasible rather than an error.
	aOrigin, ok := c.directory.Lookup(a.Origin)
	if !ok {
		return false
	}
	aDest, ok := c.directory.Lookup(a.Destination)
	if !ok {
		return false
	}
	bOrigin, ok := c.directory.Lookup(b.Origin)
	if !ok {
		return false
	}
	bDest, ok := c.directory.Lookup(b.Destination)
	if !ok {
		return false
	}

	layover, err := c.LayoverMinutes(a, b)
	if err != nil {
		return false
	}

	minLayover := MinInternationalLayoverMinutes
	if aOrigin.Country == aDest.Country &&
		aOrigin.Country == bOrigin.Country &&
		aOrigin.Country == bDest.Country {
		minLayover = MinDomesticLayoverMinutes
	}

	return layover >= minLayover && layover <= MaxLayoverMinutes
}

// LayoverMinutes computes the normalized ground time between flight a's
// arrival and flight b's departure. Negative values mean b departs before a
// arrives; they are returned as-is for the caller to reject.
func (c *Combiner) LayoverMinutes(a, b domain.Flight) (int, error) {
	arrival, err := c.normalizer.Normalize(a.ArrivalTime, a.Destination)
	if err != nil {
		return 0, err
	}
	departure, err := c.normalizer.Normalize(b.DepartureTime, b.Origin)
	if err != nil {
		return 0, err
	}
	return int(departure.Sub(arrival).Minutes()), nil
}
