package dataset

import (
	"sync/atomic"

	"github.com/skypath/itinerary-search/internal/domain"
)

// Store holds the currently published dataset snapshot. Publish replaces
// the whole snapshot reference atomically, so concurrent searches always
// observe one fully-consistent generation; an in-flight search keeps
// reading the generation it started with.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store. Snapshot returns ErrDatasetNotLoaded
// until the first Publish.
func NewStore() *Store {
	return &Store{}
}

// Publish atomically swaps in a new snapshot as the active generation.
func (s *Store) Publish(snap *Snapshot) {
	s.current.Store(snap)
}

// Snapshot returns the active snapshot, or ErrDatasetNotLoaded when
// nothing has been published yet.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrDatasetNotLoaded
	}
	return snap, nil
}
