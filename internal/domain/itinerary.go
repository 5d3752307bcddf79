package domain

// FlightSegment is a single leg of an itinerary together with its computed
// flight time. Segments are derived per search, never stored.
type FlightSegment struct {
	// Flight is the scheduled flight for this leg
	Flight Flight `json:"flight"`

	// DurationMinutes is the timezone-normalized flight time in minutes
	DurationMinutes int `json:"duration_minutes"`
}

// Layover is the ground time between two consecutive segments of the same
// itinerary at a shared connection airport.
type Layover struct {
	// Airport is the IATA code of the connection airport
	Airport string `json:"airport"`

	// DurationMinutes is the ground time in minutes
	DurationMinutes int `json:"duration_minutes"`
}

// Itinerary is a complete travel option from origin to destination:
// one or more flight segments plus the layovers between them.
//
// Invariants:
//   - TotalDurationMinutes = sum of segment durations + sum of layover durations
//   - TotalPrice = sum of segment prices
//   - len(Layovers) = len(Flights) - 1
//   - consecutive segments share a connection airport
type Itinerary struct {
	Flights              []FlightSegment `json:"flights"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
	TotalPrice           float64         `json:"total_price"`
	Layovers             []Layover       `json:"layovers"`
}

// Stops returns the number of intermediate stops (0 = direct flight).
func (i Itinerary) Stops() int {
	if len(i.Flights) == 0 {
		return 0
	}
	return len(i.Flights) - 1
}

// Origin returns the departure airport code of the first segment,
// or an empty string for an empty itinerary.
func (i Itinerary) Origin() string {
	if len(i.Flights) == 0 {
		return ""
	}
	return i.Flights[0].Flight.Origin
}

// Destination returns the arrival airport code of the last segment,
// or an empty string for an empty itinerary.
func (i Itinerary) Destination() string {
	if len(i.Flights) == 0 {
		return ""
	}
	return i.Flights[len(i.Flights)-1].Flight.Destination
}
