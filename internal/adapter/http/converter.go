package http

import (
	"github.com/skypath/itinerary-search/internal/domain"
)

// ToSearchResponseDTO converts a domain SearchResponse to its DTO.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	itineraries := make([]ItineraryDTO, 0, len(resp.Itineraries))
	for _, it := range resp.Itineraries {
		itineraries = append(itineraries, toItineraryDTO(it))
	}

	return &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:      resp.SearchCriteria.Origin,
			Destination: resp.SearchCriteria.Destination,
			Date:        resp.SearchCriteria.Date,
		},
		Metadata: MetadataDTO{
			SearchID:          resp.Metadata.SearchID,
			TotalResults:      resp.Metadata.TotalResults,
			DirectResults:     resp.Metadata.DirectResults,
			ConnectingResults: resp.Metadata.ConnectingResults,
			RoutesExplored:    resp.Metadata.RoutesExplored,
			SearchTimeMs:      resp.Metadata.SearchTimeMs,
		},
		Itineraries: itineraries,
	}
}

// toItineraryDTO converts a domain Itinerary to its DTO.
func toItineraryDTO(it domain.Itinerary) ItineraryDTO {
	flights := make([]FlightSegmentDTO, 0, len(it.Flights))
	for _, seg := range it.Flights {
		flights = append(flights, FlightSegmentDTO{
			Flight:          toFlightDTO(seg.Flight),
			DurationMinutes: seg.DurationMinutes,
		})
	}

	layovers := make([]LayoverDTO, 0, len(it.Layovers))
	for _, l := range it.Layovers {
		layovers = append(layovers, LayoverDTO{
			Airport:         l.Airport,
			DurationMinutes: l.DurationMinutes,
		})
	}

	return ItineraryDTO{
		Flights:              flights,
		TotalDurationMinutes: it.TotalDurationMinutes,
		TotalPrice:           it.TotalPrice,
		Layovers:             layovers,
	}
}

// toFlightDTO converts a domain Flight to its DTO.
func toFlightDTO(f domain.Flight) FlightDTO {
	return FlightDTO{
		FlightNumber:  f.FlightNumber,
		Airline:       f.Airline,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Price:         f.Price,
		Aircraft:      f.Aircraft,
	}
}

// ToAirportDTOs converts domain airports to DTOs.
func ToAirportDTOs(airports []domain.Airport) []AirportDTO {
	dtos := make([]AirportDTO, 0, len(airports))
	for _, a := range airports {
		dtos = append(dtos, AirportDTO{
			Code:     a.Code,
			Name:     a.Name,
			City:     a.City,
			Country:  a.Country,
			Timezone: a.Timezone,
		})
	}
	return dtos
}
