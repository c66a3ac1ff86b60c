// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package logging provides centralized zerolog-based structured logging for Wayfarer.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Msg("Server starting")
//	logging.Err(err).Msg("Geocoder lookup failed")
//
// # Request Context
//
// The API middleware stores a request ID and a correlation ID in the request
// context. Ctx attaches both to every line logged during that request,
// including lines written by analyzers deep inside the insights engine:
//
//	logging.Ctx(ctx).Warn().Str("section", name).Msg("Analyzer degraded to default")
//
// # Components
//
// Long lived collaborators (geocoder, scorer, engine) hold a component logger:
//
//	logger := logging.WithComponent("geocoder")
//
// # slog Bridge
//
// NewSlogLogger returns an *slog.Logger backed by zerolog. The supervisor tree
// uses it for suture events through sutureslog.
package logging
