// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package supervisor runs Wayfarer's long-lived services under suture v4.

# Overview

	RootSupervisor ("wayfarer")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (only when a geocoder is configured)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a geocode cache that keeps failing
garbage collection backs off without restarting the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout).WithReadiness(handler))
	if geocoder != nil {
	    tree.AddDataService(services.NewStoreGCService(geocoder, cfg.Geocoder.GCInterval))
	}

	errCh := tree.ServeBackground(ctx)

Supervisor events (restarts, backoff, panics) are logged through
sutureslog, which writes into the zerolog stream via logging.NewSlogLogger.

# Service Contract

  - Return nil: stopped cleanly, not restarted
  - Return an error: crashed, restarted with backoff
  - Context canceled: shutdown requested, return promptly

If a service ignores cancellation, UnstoppedServiceReport lists it after
the tree stops.

The insights engine itself is not supervised. It runs per request and
isolates analyzer panics on its own.
*/
package supervisor
