// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geo"
	"github.com/tomtom215/wayfarer/internal/insights"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/normalize"
	"github.com/tomtom215/wayfarer/internal/sentiment"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	parallel   bool

	cfg      *config.Config
	engine   *insights.Engine
	geocoder *geo.CachedGeocoder
}

// NewRootCmd constructs the root command; exposed for tests.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "wayfarer",
		Short:         "Travel journal insights from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (overrides "+config.ConfigPathEnvVar+")")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&a.parallel, "parallel", false, "run analyzers concurrently")

	root.AddCommand(newAnalyzeCmd(a), newWordsCmd(a), newSectionsCmd(a))
	return root
}

// setup loads configuration and builds the engine the way the server does.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		if _, err := os.Stat(a.configPath); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		if err := os.Setenv(config.ConfigPathEnvVar, a.configPath); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Insights.Parallel = a.parallel
	}

	level := cfg.Logging.Level
	if a.logLevel != "" {
		if !logging.ValidLevel(a.logLevel) {
			return fmt.Errorf("unknown log level %q", a.logLevel)
		}
		level = a.logLevel
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	})

	scorer, err := sentiment.NewFromConfig(&cfg.Sentiment)
	if err != nil {
		return fmt.Errorf("sentiment scorer: %w", err)
	}
	cached, err := geo.NewFromConfig(&cfg.Geocoder)
	if err != nil {
		return fmt.Errorf("geocoder: %w", err)
	}
	var geocoder geo.Geocoder
	if cached != nil {
		geocoder = cached
	}

	a.cfg = cfg
	a.geocoder = cached
	a.engine = insights.NewEngine(cfg.Insights, scorer, geocoder,
		insights.WithGeoLimits(cfg.Geocoder.MaxLocations, cfg.Geocoder.SectionTimeout))
	return nil
}

func (a *app) close() error {
	if a.geocoder == nil {
		return nil
	}
	return a.geocoder.Close()
}

// readPages reads a journal export from path, or from stdin when path is
// empty or "-". Both {"allPages": [...]} and a bare array are accepted.
func (a *app) readPages(cmd *cobra.Command, path string) (normalize.Result, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(io.LimitReader(cmd.InOrStdin(), a.cfg.Security.MaxBodyBytes+1))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return normalize.Result{}, fmt.Errorf("read journal: %w", err)
	}
	if int64(len(data)) > a.cfg.Security.MaxBodyBytes {
		return normalize.Result{}, errors.New("journal exceeds security.max_body_bytes")
	}

	pages, err := normalize.ParsePayload(data)
	if err != nil {
		return normalize.Result{}, err
	}

	result := normalize.New().Normalize(cmd.Context(), pages)
	for _, skipped := range result.Skipped {
		logging.Debug().Int("page", skipped.Index).Str("field", skipped.Field).Err(skipped.Err).Msg("Field skipped")
	}
	if len(result.Skipped) > 0 {
		logging.Warn().Int("fields", len(result.Skipped)).Msg("Some fields could not be read and were skipped")
	}
	return result, nil
}
