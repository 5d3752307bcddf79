package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetJSON = `{
	"airports": [
		{"code": "AAA", "name": "Alpha", "city": "Alphaville", "country": "Freedonia", "timezone": "UTC"},
		{"code": "BBB", "name": "Bravo", "city": "Bravotown", "country": "Freedonia", "timezone": "UTC"}
	],
	"flights": [
		{
			"flightNumber": "SP-1",
			"airline": "SkyPath Airways",
			"origin": "AAA",
			"destination": "BBB",
			"departureTime": "2024-06-01T10:00",
			"arrivalTime": "2024-06-01T12:30",
			"price": 100.0,
			"aircraft": "Boeing 737"
		}
	]
}`

func TestParse(t *testing.T) {
	snap, err := Parse([]byte(datasetJSON), zerolog.Nop())

	require.NoError(t, err)
	assert.Len(t, snap.Directory, 2)
	assert.Len(t, snap.Catalog, 1)
	assert.True(t, snap.Graph.HasEdge("AAA", "BBB"))

	f := snap.Catalog[0]
	assert.Equal(t, "SP-1", f.FlightNumber)
	assert.Equal(t, "2024-06-01T10:00", f.DepartureTime)
	assert.Equal(t, 100.0, f.Price)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"), zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dataset json")
}

func TestParse_EmptyDocument(t *testing.T) {
	snap, err := Parse([]byte(`{}`), zerolog.Nop())

	require.NoError(t, err)
	assert.Empty(t, snap.Directory)
	assert.Empty(t, snap.Catalog)
	assert.Equal(t, 0, snap.Graph.NodeCount())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	require.NoError(t, os.WriteFile(path, []byte(datasetJSON), 0o644))

	snap, err := LoadFile(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Len(t, snap.Directory, 2)
	assert.Len(t, snap.Catalog, 1)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"), zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dataset file")
}
