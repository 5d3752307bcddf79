package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypath/itinerary-search/internal/domain"
)

func TestToSearchResponseDTO(t *testing.T) {
	resp := &domain.SearchResponse{
		SearchCriteria: domain.SearchCriteria{Origin: "JFK", Destination: "LAX", Date: "2025-03-15"},
		Metadata: domain.SearchMetadata{
			SearchID:          "abc-123",
			TotalResults:      1,
			DirectResults:     0,
			ConnectingResults: 1,
			RoutesExplored:    2,
			SearchTimeMs:      7,
		},
		Itineraries: []domain.Itinerary{
			{
				Flights: []domain.FlightSegment{
					{
						Flight: domain.Flight{
							FlightNumber:  "SP-110",
							Airline:       "SkyPath Airways",
							Origin:        "JFK",
							Destination:   "ORD",
							DepartureTime: "2025-03-15T07:00",
							ArrivalTime:   "2025-03-15T08:30",
							Price:         140,
							Aircraft:      "Boeing 737",
						},
						DurationMinutes: 150,
					},
					{
						Flight:          domain.Flight{FlightNumber: "SP-210", Origin: "ORD", Destination: "LAX"},
						DurationMinutes: 260,
					},
				},
				TotalDurationMinutes: 485,
				TotalPrice:           320,
				Layovers:             []domain.Layover{{Airport: "ORD", DurationMinutes: 75}},
			},
		},
	}

	dto := ToSearchResponseDTO(resp)

	require.NotNil(t, dto)
	assert.Equal(t, "JFK", dto.SearchCriteria.Origin)
	assert.Equal(t, "abc-123", dto.Metadata.SearchID)
	assert.Equal(t, 1, dto.Metadata.TotalResults)
	assert.Equal(t, 2, dto.Metadata.RoutesExplored)

	require.Len(t, dto.Itineraries, 1)
	it := dto.Itineraries[0]
	assert.Equal(t, 485, it.TotalDurationMinutes)
	assert.Equal(t, 320.0, it.TotalPrice)
	require.Len(t, it.Flights, 2)
	assert.Equal(t, "SP-110", it.Flights[0].Flight.FlightNumber)
	assert.Equal(t, 150, it.Flights[0].DurationMinutes)
	require.Len(t, it.Layovers, 1)
	assert.Equal(t, "ORD", it.Layovers[0].Airport)
	assert.Equal(t, 75, it.Layovers[0].DurationMinutes)
}

func TestToSearchResponseDTO_Nil(t *testing.T) {
	assert.Nil(t, ToSearchResponseDTO(nil))
}

func TestToSearchResponseDTO_EmptyItineraries(t *testing.T) {
	dto := ToSearchResponseDTO(&domain.SearchResponse{Itineraries: nil})

	require.NotNil(t, dto)
	assert.NotNil(t, dto.Itineraries)
	assert.Empty(t, dto.Itineraries)
}

func TestToAirportDTOs(t *testing.T) {
	airports := []domain.Airport{
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "United States", Timezone: "America/New_York"},
	}

	dtos := ToAirportDTOs(airports)

	require.Len(t, dtos, 1)
	assert.Equal(t, "JFK", dtos[0].Code)
	assert.Equal(t, "America/New_York", dtos[0].Timezone)

	assert.NotNil(t, ToAirportDTOs(nil))
	assert.Empty(t, ToAirportDTOs(nil))
}
