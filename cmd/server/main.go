// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/sendero/docs" // Import generated swagger docs
	"github.com/tomtom215/sendero/internal/api"
	"github.com/tomtom215/sendero/internal/config"
	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/places"
	"github.com/tomtom215/sendero/internal/supervisor"
	"github.com/tomtom215/sendero/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Sendero stopped with an error")
	}
}

//nolint:gocyclo // Sequential setup steps
func run() error {
	started := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("places_provider", cfg.Places.Provider).
		Bool("places_store", cfg.Places.Store.Enabled).
		Msg("Starting Sendero with supervisor tree")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// === DATA LAYER ===
	layer, err := places.Open(ctx, &cfg.Places, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := layer.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing places data layer")
		}
	}()

	planning, err := initPlanning(cfg, layer, logger)
	if err != nil {
		return err
	}

	// === HTTP ===
	handler := api.NewHandler(planning.Recommender, planning.Optimizer, logger,
		api.WithReadinessCheck("places", layer.Provider),
		api.WithPlacesStats(layer.Provider),
		api.WithVersion(version),
	)
	mw := api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security))
	router := api.NewRouter(handler, mw, cfg.Server.SwaggerEnabled)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===
	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logger),
		supervisor.TreeConfigFromConfig(cfg.Supervisor),
	)
	if err != nil {
		return err
	}

	tree.AddDataService(services.NewJanitorService(map[string]services.ExpiringCache{
		"recommendations": planning.Recommender,
		"nearby":          layer.Provider,
	}, cfg.Supervisor.JanitorInterval, logger))
	tree.AddDataService(services.NewUptimeService(version, started, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	logging.Info().Str("addr", server.Addr).Bool("swagger", cfg.Server.SwaggerEnabled).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground delivers exactly one result and never closes the channel.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Dur("uptime", time.Since(started)).Msg("Sendero stopped gracefully")
	return nil
}
