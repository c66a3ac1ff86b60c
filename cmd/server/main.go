// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/wayfarer/docs" // registers the swagger docs
	"github.com/tomtom215/wayfarer/internal/api"
	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geo"
	"github.com/tomtom215/wayfarer/internal/insights"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/sentiment"
	"github.com/tomtom215/wayfarer/internal/supervisor"
	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "wayfarer",
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Bool("parallel", cfg.Insights.Parallel).
		Msg("Starting Wayfarer")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	scorer, err := sentiment.NewFromConfig(&cfg.Sentiment)
	if err != nil {
		return fmt.Errorf("sentiment scorer: %w", err)
	}

	cached, err := geo.NewFromConfig(&cfg.Geocoder)
	if err != nil {
		return fmt.Errorf("geocoder: %w", err)
	}
	// A nil *CachedGeocoder must not become a non-nil interface.
	var geocoder geo.Geocoder
	geocoderName := "none"
	if cached != nil {
		geocoder = cached
		geocoderName = cached.Name()
		defer func() {
			if err := cached.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing geocode store")
			}
		}()
	}

	engine := insights.NewEngine(cfg.Insights, scorer, geocoder,
		insights.WithGeoLimits(cfg.Geocoder.MaxLocations, cfg.Geocoder.SectionTimeout))

	handlerOpts := []api.HandlerOption{
		api.WithBackends(geocoderName, scorer.Name()),
		api.WithVersion(version),
	}
	if cached != nil {
		handlerOpts = append(handlerOpts, api.WithGeocodeCache(cached))
	}
	handler := api.NewHandler(engine, cfg, handlerOpts...)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	if cached != nil {
		tree.AddDataService(services.NewStoreGCService(cached, cfg.Geocoder.GCInterval))
		logging.Info().
			Dur("interval", cfg.Geocoder.GCInterval).
			Bool("persistent", cached.Persistent()).
			Msg("Geocode cache GC added to supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout).WithReadiness(handler))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", serveErr)
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	return nil
}
