package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/skypath/itinerary-search/internal/domain"
)

// file mirrors the on-disk dataset layout: one JSON document with the
// airport list and the flight list.
type file struct {
	Airports []domain.Airport `json:"airports"`
	Flights  []domain.Flight  `json:"flights"`
}

// LoadFile reads a dataset JSON file and builds a snapshot from it.
func LoadFile(path string, log zerolog.Logger) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}

	snap, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("airports", len(snap.Directory)).
		Int("flights", len(snap.Catalog)).
		Msg("Flight dataset loaded")

	return snap, nil
}

// Parse decodes raw dataset JSON and builds a snapshot.
func Parse(data []byte, log zerolog.Logger) (*Snapshot, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dataset json: %w", err)
	}
	return NewSnapshot(f.Airports, f.Flights, log), nil
}
