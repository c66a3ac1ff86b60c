// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package services adapts Wayfarer components to suture.Service.

HTTPServerService turns http.Server's ListenAndServe/Shutdown pair into a
context driven Serve. It flips the API readiness probe on start and off
before draining connections.

StoreGCService garbage collects the geocode cache on a ticker: expired
in-memory lookups and, when a store path is set, the badger value log. A failed collection is returned as an error so the data layer
supervisor restarts it with backoff.
*/
package services
