package usecase

import (
	"sort"

	"github.com/skypath/itinerary-search/internal/domain"
)

// SortByDuration orders itineraries ascending by total duration.
// Ties carry no secondary key; equal-duration itineraries keep an
// unspecified relative order (sort.Slice is not stable). The input slice
// is not mutated.
func SortByDuration(itineraries []domain.Itinerary) []domain.Itinerary {
	if len(itineraries) <= 1 {
		return itineraries
	}

	result := make([]domain.Itinerary, len(itineraries))
	copy(result, itineraries)

	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalDurationMinutes < result[j].TotalDurationMinutes
	})

	return result
}
