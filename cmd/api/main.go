// cmd/api/main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fashiontrends/internal/adapter/storage"
	"fashiontrends/internal/config"
	"fashiontrends/internal/logging"
	"fashiontrends/internal/server"
	"fashiontrends/internal/service/analytics"
	"fashiontrends/internal/service/feed"
)

func main() {
	// Load environment variables from .env files, if present
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to load .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Load the dataset and build the aggregation engine
	trendStore := storage.NewTrendStore()
	engine := analytics.NewEngine(trendStore)

	logging.Info().
		Str("snapshot_id", trendStore.SnapshotID()).
		Int("regions", len(trendStore.RegionNames())).
		Int("seasons", len(trendStore.SeasonNames())).
		Msg("Trend dataset loaded")

	// Start the live feed
	var hub *feed.Hub
	if cfg.Feed.Enabled {
		hub = feed.NewHub(engine, feed.HubConfig{
			Interval: cfg.Feed.Interval,
			Client:   feed.DefaultClientConfig(),
		})
		go hub.Run(ctx)
	}

	// Initialize HTTP server
	httpServer := server.NewServer(cfg, trendStore, engine, hub)

	// Start HTTP server
	go func() {
		logging.Info().Str("addr", httpServer.Addr()).Str("env", cfg.Environment).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logging.Info().Msg("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Stop the feed hub; closes remaining websocket clients
	cancel()

	logging.Info().Msg("Shutdown complete")
}
