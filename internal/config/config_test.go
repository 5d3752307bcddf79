package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "data/flights.json", cfg.Dataset.Path)
	assert.Equal(t, 2, cfg.Search.MaxStops)
	assert.Equal(t, 10, cfg.Search.MaxRouteCombinations)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATASET_PATH", "/srv/data/flights.json")
	t.Setenv("SEARCH_MAX_STOPS", "1")
	t.Setenv("SEARCH_MAX_ROUTE_COMBINATIONS", "25")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/data/flights.json", cfg.Dataset.Path)
	assert.Equal(t, 1, cfg.Search.MaxStops)
	assert.Equal(t, 25, cfg.Search.MaxRouteCombinations)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		envVal  string
		wantErr string
	}{
		{name: "port too low", envKey: "SERVER_PORT", envVal: "0", wantErr: "SERVER_PORT"},
		{name: "port too high", envKey: "SERVER_PORT", envVal: "70000", wantErr: "SERVER_PORT"},
		{name: "empty dataset path", envKey: "DATASET_PATH", envVal: "", wantErr: "DATASET_PATH"},
		{name: "negative max stops", envKey: "SEARCH_MAX_STOPS", envVal: "-1", wantErr: "SEARCH_MAX_STOPS"},
		{name: "zero combinations cap", envKey: "SEARCH_MAX_ROUTE_COMBINATIONS", envVal: "0", wantErr: "SEARCH_MAX_ROUTE_COMBINATIONS"},
		{name: "bad log level", envKey: "LOG_LEVEL", envVal: "verbose", wantErr: "LOG_LEVEL"},
		{name: "bad log format", envKey: "LOG_FORMAT", envVal: "xml", wantErr: "LOG_FORMAT"},
		{name: "bad app env", envKey: "APP_ENV", envVal: "qa", wantErr: "APP_ENV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")

	assert.Panics(t, func() { MustLoad() })
}
