// Package main is the entry point for the SkyPath itinerary search service.
//
//	@title						SkyPath Itinerary Search API
//	@version					1.0.0
//	@description				Searches direct and connecting flight itineraries (up to two stops) over a loaded flight dataset, with timezone-correct durations and layovers.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skypath/itinerary-search/docs"

	itinhttp "github.com/skypath/itinerary-search/internal/adapter/http"
	"github.com/skypath/itinerary-search/internal/adapter/http/middleware"
	"github.com/skypath/itinerary-search/internal/config"
	"github.com/skypath/itinerary-search/internal/dataset"
	"github.com/skypath/itinerary-search/internal/infrastructure/timeutil"
	"github.com/skypath/itinerary-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("dataset", cfg.Dataset.Path).
		Msg("Configuration loaded")

	// Build the first dataset snapshot before serving; searches read it
	// without coordination, and a future reload publishes a fresh snapshot
	// through the same store.
	store := dataset.NewStore()
	snap, err := dataset.LoadFile(cfg.Dataset.Path, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load flight dataset")
	}
	store.Publish(snap)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	setupRoutes(e, cfg, store)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, store *dataset.Store) {
	searchConfig := &usecase.Config{
		MaxStops:             cfg.Search.MaxStops,
		MaxRouteCombinations: cfg.Search.MaxRouteCombinations,
	}
	searchUseCase := usecase.NewItinerarySearch(store, searchConfig)

	handler := itinhttp.NewItineraryHandler(searchUseCase, store, timeutil.NewRealClock())
	itinhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
