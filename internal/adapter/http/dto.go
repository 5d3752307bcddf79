package http

// SearchResponseDTO is the data transfer object for search responses.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Itineraries    []ItineraryDTO    `json:"itineraries"`
}

// SearchCriteriaDTO echoes the search parameters in the response.
type SearchCriteriaDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	SearchID          string `json:"search_id"`
	TotalResults      int    `json:"total_results"`
	DirectResults     int    `json:"direct_results"`
	ConnectingResults int    `json:"connecting_results"`
	RoutesExplored    int    `json:"routes_explored"`
	SearchTimeMs      int64  `json:"search_time_ms"`
}

// ItineraryDTO is the data transfer object for a single itinerary.
type ItineraryDTO struct {
	Flights              []FlightSegmentDTO `json:"flights"`
	TotalDurationMinutes int                `json:"total_duration_minutes"`
	TotalPrice           float64            `json:"total_price"`
	Layovers             []LayoverDTO       `json:"layovers"`
}

// FlightSegmentDTO represents one leg of an itinerary.
type FlightSegmentDTO struct {
	Flight          FlightDTO `json:"flight"`
	DurationMinutes int       `json:"duration_minutes"`
}

// FlightDTO represents a scheduled flight.
type FlightDTO struct {
	FlightNumber  string  `json:"flightNumber"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
	Aircraft      string  `json:"aircraft"`
}

// LayoverDTO represents ground time between two segments.
type LayoverDTO struct {
	Airport         string `json:"airport"`
	DurationMinutes int    `json:"duration_minutes"`
}

// AirportDTO represents an airport in the directory listing.
type AirportDTO struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}
