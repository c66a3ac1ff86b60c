// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Command wayfarer runs the insight pipeline over a journal export file
// without starting the HTTP server.
//
//	wayfarer analyze -f journal.json --format yaml
//	cat journal.json | wayfarer analyze --section seasonal_patterns
//	wayfarer words -f journal.json --limit 20 --format table
//	wayfarer sections
//
// Configuration is read exactly as the server reads it (CONFIG_PATH,
// config.yaml, environment). --config points at a specific file.
package main

import (
	"os"

	"github.com/tomtom215/wayfarer/internal/logging"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
