// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package api exposes the insight engine over HTTP using the chi router.

# Endpoints

	POST /process-insights                      full report (legacy path)
	POST /api/v1/insights                       full report
	POST /api/v1/insights/sections/{section}    one section
	POST /api/v1/insights/word-frequencies      word frequency table
	GET  /api/v1/health[/live|/ready]           health and probes
	GET  /metrics                               Prometheus
	GET  /swagger/*                             Swagger UI

Every POST endpoint takes {"allPages": [...]} with Content-Type
application/json.

# Status Codes

  - 200: report produced, including when some sections degraded
  - 400: malformed JSON or missing allPages
  - 404: unknown section
  - 413: body larger than security.max_body_bytes
  - 415: Content-Type is not JSON
  - 429: rate limit exceeded
  - 500: unexpected failure outside the analyzers

Errors are always {"error": "...", "status": "failed"}. Degraded sections
are listed, comma separated, in the X-Insights-Degraded response header so
the report body keeps its shape.

# Middleware

Applied in order: request ID, request logging, RealIP, panic recovery,
CORS, then per route group rate limiting, security headers, Prometheus
metrics, the performance monitor and gzip compression.
*/
package api
