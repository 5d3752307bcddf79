package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skypath/itinerary-search/internal/dataset"
	"github.com/skypath/itinerary-search/internal/domain"
)

// DefaultMaxStops is the maximum number of intermediate airports searched
// on connecting routes.
const DefaultMaxStops = 2

// ItinerarySearch defines the search operations exposed to the transport layer.
type ItinerarySearch interface {
	// Search returns all direct and connecting itineraries between two
	// airports on a date, ordered ascending by total duration. No graph
	// path and no matching flights are normal empty results, not errors.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)

	// ListAirports returns every airport in the active dataset snapshot,
	// ordered by code.
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

// Config contains tuning options for the search engine.
type Config struct {
	// MaxStops is the maximum number of intermediate airports per route
	MaxStops int

	// MaxRouteCombinations caps valid flight sequences retained per route
	MaxRouteCombinations int
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		MaxStops:             DefaultMaxStops,
		MaxRouteCombinations: DefaultMaxRouteCombinations,
	}
}

// itinerarySearch implements ItinerarySearch over the published dataset
// snapshot. Each search is a pure function of one snapshot generation and
// the request parameters; no state is carried between requests.
type itinerarySearch struct {
	store *dataset.Store
	cfg   Config
}

// NewItinerarySearch creates an ItinerarySearch reading from the given
// snapshot store. If config is nil, defaults are used.
func NewItinerarySearch(store *dataset.Store, config *Config) ItinerarySearch {
	cfg := DefaultConfig()
	if config != nil {
		if config.MaxStops > 0 {
			cfg.MaxStops = config.MaxStops
		}
		if config.MaxRouteCombinations > 0 {
			cfg.MaxRouteCombinations = config.MaxRouteCombinations
		}
	}

	return &itinerarySearch{
		store: store,
		cfg:   cfg,
	}
}

// Search implements ItinerarySearch.Search.
func (s *itinerarySearch) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	start := time.Now()

	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	normalizer := NewTimeNormalizer(snap.Directory)
	combiner := NewCombiner(snap.Catalog, snap.Directory, normalizer, s.cfg.MaxRouteCombinations)
	assembler := NewAssembler(normalizer, combiner)

	direct := s.directItineraries(snap, assembler, criteria)
	connecting, routesExplored, err := s.connectingItineraries(ctx, snap, combiner, assembler, criteria)
	if err != nil {
		return nil, err
	}

	itineraries := make([]domain.Itinerary, 0, len(direct)+len(connecting))
	itineraries = append(itineraries, direct...)
	itineraries = append(itineraries, connecting...)
	itineraries = SortByDuration(itineraries)

	metadata := domain.SearchMetadata{
		SearchID:          uuid.New().String(),
		DirectResults:     len(direct),
		ConnectingResults: len(connecting),
		RoutesExplored:    routesExplored,
		SearchTimeMs:      time.Since(start).Milliseconds(),
	}

	return domain.NewSearchResponse(criteria, itineraries, metadata), nil
}

// directItineraries builds a single-segment itinerary for every flight
// matching origin, destination, and origin-local departure date. A flight
// whose sequence cannot be assembled is skipped, never fatal.
func (s *itinerarySearch) directItineraries(snap *dataset.Snapshot, assembler *Assembler, criteria domain.SearchCriteria) []domain.Itinerary {
	flights := snap.Catalog.FindByRoute(criteria.Origin, criteria.Destination, criteria.Date)

	itineraries := make([]domain.Itinerary, 0, len(flights))
	for _, f := range flights {
		itinerary, err := assembler.AssembleDirect(f)
		if err != nil {
			continue
		}
		itineraries = append(itineraries, itinerary)
	}
	return itineraries
}

// connectingItineraries enumerates simple routes through the connection
// graph, excluding direct (two-node) routes since those are handled by the
// direct pass, then validates flight combinations per surviving route and
// assembles the valid sequences. A failure on one sequence omits just that
// sequence.
func (s *itinerarySearch) connectingItineraries(ctx context.Context, snap *dataset.Snapshot, combiner *Combiner, assembler *Assembler, criteria domain.SearchCriteria) ([]domain.Itinerary, int, error) {
	routes := snap.Graph.Paths(criteria.Origin, criteria.Destination, s.cfg.MaxStops)

	var itineraries []domain.Itinerary
	explored := 0
	for _, route := range routes {
		if len(route) == 2 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, explored, err
		}
		explored++

		for _, sequence := range combiner.Combinations(route, criteria.Date) {
			itinerary, err := assembler.Assemble(sequence)
			if err != nil {
				// The sequence is infeasible; the search continues.
				continue
			}
			itineraries = append(itineraries, itinerary)
		}
	}

	return itineraries, explored, nil
}

// ListAirports implements ItinerarySearch.ListAirports.
func (s *itinerarySearch) ListAirports(_ context.Context) ([]domain.Airport, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Directory.List(), nil
}

// Ensure itinerarySearch implements ItinerarySearch at compile time.
var _ ItinerarySearch = (*itinerarySearch)(nil)
