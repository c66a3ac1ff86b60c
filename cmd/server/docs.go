// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// @title Wayfarer Insights API
// @version 1.0
// @description Turns a travel journal export into sentiment, temporal, spatial and personality insights.
// @description
// @description ## Partial failure
// @description
// @description Each insight section is computed independently. A section that fails keeps its
// @description empty default and the response carries an `X-Insights-Degraded` header listing it.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {"error": "allPages is required", "status": "failed"}
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/wayfarer/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Insights
// @tag.description Journal processing and per-section insight endpoints
//
// @tag.name Core
// @tag.description Health, liveness and readiness probes
package main
