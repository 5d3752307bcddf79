package usecase

import (
	"errors"

	"github.com/skypath/itinerary-search/internal/domain"
)

// Assembler converts a validated flight sequence into a complete Itinerary
// with per-segment durations, layovers, and summed totals. Every sequence
// that reaches it has already passed connection validation, so assembly
// failures only occur on flights whose airports cannot be normalized.
type Assembler struct {
	normalizer *TimeNormalizer
	combiner   *Combiner
}

// NewAssembler creates an Assembler sharing the search's normalizer and combiner.
func NewAssembler(normalizer *TimeNormalizer, combiner *Combiner) *Assembler {
	return &Assembler{normalizer: normalizer, combiner: combiner}
}

// Assemble builds one Itinerary from an ordered flight sequence.
// Returns an error (wrapping ErrUnknownAirport) when any endpoint cannot be
// normalized; the caller treats that sequence as infeasible and skips it.
func (a *Assembler) Assemble(flights []domain.Flight) (domain.Itinerary, error) {
	segments := make([]domain.FlightSegment, 0, len(flights))
	layovers := make([]domain.Layover, 0, max(len(flights)-1, 0))

	totalDuration := 0
	totalPrice := 0.0

	for i, f := range flights {
		duration, err := a.normalizer.FlightDuration(f)
		if err != nil {
			return domain.Itinerary{}, err
		}
		segments = append(segments, domain.FlightSegment{
			Flight:          f,
			DurationMinutes: duration,
		})
		totalDuration += duration
		totalPrice += f.Price

		if i == 0 {
			continue
		}
		layover, err := a.combiner.LayoverMinutes(flights[i-1], f)
		if err != nil {
			return domain.Itinerary{}, err
		}
		layovers = append(layovers, domain.Layover{
			Airport:         flights[i-1].Destination,
			DurationMinutes: layover,
		})
		totalDuration += layover
	}

	return domain.Itinerary{
		Flights:              segments,
		TotalDurationMinutes: totalDuration,
		TotalPrice:           totalPrice,
		Layovers:             layovers,
	}, nil
}

// AssembleDirect builds a single-segment Itinerary for a direct flight.
// Flights referencing airports absent from the directory still qualify as
// direct matches; their duration falls back to the naive local difference
// since no timezone is available to normalize against.
func (a *Assembler) AssembleDirect(f domain.Flight) (domain.Itinerary, error) {
	duration, err := a.normalizer.FlightDuration(f)
	if errors.Is(err, domain.ErrUnknownAirport) {
		duration, err = NaiveDuration(f.DepartureTime, f.ArrivalTime)
	}
	if err != nil {
		return domain.Itinerary{}, err
	}

	return domain.Itinerary{
		Flights: []domain.FlightSegment{{
			Flight:          f,
			DurationMinutes: duration,
		}},
		TotalDurationMinutes: duration,
		TotalPrice:           f.Price,
		Layovers:             []domain.Layover{},
	}, nil
}
