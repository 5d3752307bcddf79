package domain

// Flight represents a single scheduled flight in the loaded dataset.
// Flights are immutable after load.
type Flight struct {
	// FlightNumber is the airline's flight number (e.g., "SP-101")
	FlightNumber string `json:"flightNumber"`

	// Airline is the operating airline's name
	Airline string `json:"airline"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureTime is the local wall-clock departure timestamp without a UTC
	// offset (e.g., "2025-03-15T08:30"). It is interpreted in the origin
	// airport's timezone.
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local wall-clock arrival timestamp without a UTC
	// offset. It is interpreted in the destination airport's timezone.
	// DepartureTime and ArrivalTime are not directly comparable without
	// timezone normalization.
	ArrivalTime string `json:"arrivalTime"`

	// Price is the fare for this flight in the dataset's currency
	Price float64 `json:"price"`

	// Aircraft is the aircraft type (e.g., "Boeing 737")
	Aircraft string `json:"aircraft"`
}

// DepartureDate returns the date portion (YYYY-MM-DD) of the local departure
// timestamp. Returns an empty string when the timestamp is too short to
// carry a date.
func (f Flight) DepartureDate() string {
	if len(f.DepartureTime) < 10 {
		return ""
	}
	return f.DepartureTime[:10]
}

// FlightCatalog is the immutable set of scheduled flights for a loaded dataset.
type FlightCatalog []Flight

// FindByRoute returns every flight in the catalog whose origin, destination
// and origin-local departure date match. Matching is purely on codes and the
// date string, so flights referencing airports absent from the directory are
// still returned; connection validation rejects those separately.
func (c FlightCatalog) FindByRoute(origin, destination, date string) []Flight {
	var matches []Flight
	for _, f := range c {
		if f.Origin != origin || f.Destination != destination {
			continue
		}
		if f.DepartureDate() != date {
			continue
		}
		matches = append(matches, f)
	}
	return matches
}
