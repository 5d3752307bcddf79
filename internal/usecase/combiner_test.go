package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypath/itinerary-search/internal/domain"
)

func newCombiner(catalog domain.FlightCatalog, maxPerRoute int) *Combiner {
	dir := testDirectory()
	return NewCombiner(catalog, dir, NewTimeNormalizer(dir), maxPerRoute)
}

func flightNumbers(sequence []domain.Flight) []string {
	numbers := make([]string, 0, len(sequence))
	for _, f := range sequence {
		numbers = append(numbers, f.FlightNumber)
	}
	return numbers
}

func TestCombinations_DomesticLayoverAccepted(t *testing.T) {
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-2", "BBB", "CCC", "2024-06-01T12:00", "2024-06-01T13:00", 120),
	}
	c := newCombiner(catalog, 0)

	combos := c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01")

	require.Len(t, combos, 1)
	assert.Equal(t, []string{"SP-1", "SP-2"}, flightNumbers(combos[0]))
}

func TestCombinations_LayoverTooShort(t *testing.T) {
	// 20-minute connection at BBB, below the 45-minute domestic minimum.
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-2", "BBB", "CCC", "2024-06-01T11:20", "2024-06-01T12:20", 120),
	}
	c := newCombiner(catalog, 0)

	assert.Empty(t, c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01"))
}

func TestCombinations_DomesticMinimumBoundary(t *testing.T) {
	// Exactly 45 minutes is acceptable.
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-2", "BBB", "CCC", "2024-06-01T11:45", "2024-06-01T12:45", 120),
	}
	c := newCombiner(catalog, 0)

	assert.Len(t, c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01"), 1)
}

func TestCombinations_InternationalMinimumApplies(t *testing.T) {
	// BBB -> III leaves the country, so the whole connection needs 90 minutes.
	tooShort := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-3", "BBB", "III", "2024-06-01T12:00", "2024-06-01T14:00", 300),
	}
	enough := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-3", "BBB", "III", "2024-06-01T12:30", "2024-06-01T14:30", 300),
	}

	assert.Empty(t, newCombiner(tooShort, 0).Combinations([]string{"AAA", "BBB", "III"}, "2024-06-01"))
	assert.Len(t, newCombiner(enough, 0).Combinations([]string{"AAA", "BBB", "III"}, "2024-06-01"), 1)
}

func TestCombinations_LayoverTooLong(t *testing.T) {
	// 361 minutes at BBB, above the 360-minute maximum.
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T08:00", "2024-06-01T09:00", 100),
		mkFlight("SP-2", "BBB", "CCC", "2024-06-01T15:01", "2024-06-01T16:01", 120),
	}
	c := newCombiner(catalog, 0)

	assert.Empty(t, c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01"))
}

func TestCombinations_NegativeLayoverRejected(t *testing.T) {
	// The onward flight departs before the inbound one lands.
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T12:00", 100),
		mkFlight("SP-2", "BBB", "CCC", "2024-06-01T11:00", "2024-06-01T12:00", 120),
	}
	c := newCombiner(catalog, 0)

	assert.Empty(t, c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01"))
}

func TestCombinations_UnknownAirportInfeasible(t *testing.T) {
	// XYZ has no directory entry, so connections through it never validate.
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "XYZ", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-2", "XYZ", "CCC", "2024-06-01T12:00", "2024-06-01T13:00", 120),
	}
	c := newCombiner(catalog, 0)

	assert.Empty(t, c.Combinations([]string{"AAA", "XYZ", "CCC"}, "2024-06-01"))
}

func TestCombinations_SegmentWithoutCandidates(t *testing.T) {
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
	}
	c := newCombiner(catalog, 0)

	assert.Nil(t, c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01"))
}

func TestCombinations_FiltersByDate(t *testing.T) {
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-2", "BBB", "CCC", "2024-06-02T12:00", "2024-06-02T13:00", 120),
	}
	c := newCombiner(catalog, 0)

	assert.Nil(t, c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01"))
}

func TestCombinations_DegenerateRoute(t *testing.T) {
	c := newCombiner(nil, 0)

	assert.Nil(t, c.Combinations([]string{"AAA"}, "2024-06-01"))
	assert.Nil(t, c.Combinations(nil, "2024-06-01"))
}

func TestCombinations_CapsPerRoute(t *testing.T) {
	// 4x4 feasible candidates give 16 combinations; only the first 10 in
	// cross-product order survive, earlier segments varying slowest.
	var catalog domain.FlightCatalog
	for i := 0; i < 4; i++ {
		dep := fmt.Sprintf("2024-06-01T%02d:00", 8+i)
		arr := fmt.Sprintf("2024-06-01T%02d:00", 9+i)
		catalog = append(catalog, mkFlight(fmt.Sprintf("F-%d", i+1), "AAA", "BBB", dep, arr, 100))
	}
	departures := []string{"13:00", "13:30", "14:00", "14:30"}
	for i, d := range departures {
		catalog = append(catalog, mkFlight(fmt.Sprintf("G-%d", i+1), "BBB", "CCC",
			"2024-06-01T"+d, "2024-06-01T16:00", 120))
	}
	c := newCombiner(catalog, 0)

	combos := c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01")

	require.Len(t, combos, DefaultMaxRouteCombinations)
	assert.Equal(t, []string{"F-1", "G-1"}, flightNumbers(combos[0]))
	assert.Equal(t, []string{"F-3", "G-2"}, flightNumbers(combos[9]))
}

func TestCombinations_CustomCap(t *testing.T) {
	catalog := domain.FlightCatalog{
		mkFlight("SP-1", "AAA", "BBB", "2024-06-01T10:00", "2024-06-01T11:00", 100),
		mkFlight("SP-2", "BBB", "CCC", "2024-06-01T12:00", "2024-06-01T13:00", 120),
		mkFlight("SP-3", "BBB", "CCC", "2024-06-01T13:00", "2024-06-01T14:00", 110),
	}
	c := newCombiner(catalog, 1)

	combos := c.Combinations([]string{"AAA", "BBB", "CCC"}, "2024-06-01")

	require.Len(t, combos, 1)
	assert.Equal(t, []string{"SP-1", "SP-2"}, flightNumbers(combos[0]))
}

func TestLayoverMinutes_CrossTimezone(t *testing.T) {
	// Arrive NYC 12:00 EDT (16:00 UTC), depart NYC 13:30 EDT (17:30 UTC).
	a := mkFlight("SP-1", "LAS", "NYC", "2025-03-15T04:00", "2025-03-15T12:00", 200)
	b := mkFlight("SP-2", "NYC", "LON", "2025-03-15T13:30", "2025-03-15T21:30", 400)
	c := newCombiner(domain.FlightCatalog{a, b}, 0)

	layover, err := c.LayoverMinutes(a, b)

	require.NoError(t, err)
	assert.Equal(t, 90, layover)
}
