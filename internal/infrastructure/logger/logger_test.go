package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.Info().Str("origin", "JFK").Msg("search started")

	entry := logLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "skypath-itinerary-search", entry["service"])
	assert.Equal(t, "JFK", entry["origin"])
	assert.Equal(t, "search started", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewWithOutput_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "warn"
	log := NewWithOutput(cfg, &buf)

	log.Info().Msg("suppressed")
	assert.Empty(t, buf.String())

	log.Warn().Msg("emitted")
	assert.Contains(t, buf.String(), "emitted")
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "chatty"
	log := NewWithOutput(cfg, &buf)

	log.Debug().Msg("suppressed")
	assert.Empty(t, buf.String())

	log.Info().Msg("emitted")
	assert.Contains(t, buf.String(), "emitted")
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "console"
	log := NewWithOutput(cfg, &buf)

	log.Info().Msg("readable output")

	// Console format is human-oriented, not JSON.
	assert.Contains(t, buf.String(), "readable output")
	assert.Error(t, json.Unmarshal(buf.Bytes(), &map[string]interface{}{}))
}

func TestWithContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.WithRequestID("req-1").WithSearchID("search-9").Info().Msg("scoped")

	entry := logLine(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "search-9", entry["search_id"])
}

func TestNop_ProducesNoOutput(t *testing.T) {
	log := Nop()

	// Nothing to assert on output; the calls must simply not panic.
	log.Info().Msg("dropped")
	log.Error().Msg("dropped")
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	SetGlobal(NewWithOutput(DefaultConfig(), &buf))
	t.Cleanup(func() { Global = nil })

	Info().Msg("via global")

	assert.Contains(t, buf.String(), "via global")
}
