// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package models defines the data structures shared across Wayfarer.

Key Components:

  - Entry: normalized journal page consumed by every analyzer
  - SentimentScore: polarity and subjectivity of one text
  - Report: the full insight bundle returned to clients, one field per section
  - Error taxonomy: InputError, RecordError, AnalyzerError, ExternalServiceError

Optional fields on Entry use zero values for "absent". A string field is
absent when empty and a time field is absent when nil. The normalizer never
produces a blank but present string.

Error Handling:

Only InputError aborts a request. RecordError is recovered inside the
normalizer, AnalyzerError at the insights engine boundary, and
ExternalServiceError inside the section that depends on the external
capability. All four implement Unwrap so callers can use errors.Is and
errors.As.
*/
package models
