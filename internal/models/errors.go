// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import (
	"errors"
	"fmt"
)

// ErrMissingPages is returned when a request carries no page collection.
var ErrMissingPages = errors.New("allPages is required")

// InputError is a request level failure. It is the only error kind that
// aborts a request before any analyzer runs.
type InputError struct {
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Reason, e.Err)
	}
	return "invalid input: " + e.Reason
}

func (e *InputError) Unwrap() error { return e.Err }

// RecordError describes one malformed field of one page. The field is
// treated as absent and normalization continues.
type RecordError struct {
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("page %d: field %s: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// AnalyzerError wraps a failure (returned error or recovered panic) of one
// insight section. The section degrades to its default payload.
type AnalyzerError struct {
	Section string
	Panic   bool
	Err     error
}

func (e *AnalyzerError) Error() string {
	if e.Panic {
		return fmt.Sprintf("analyzer %s panicked: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("analyzer %s: %v", e.Section, e.Err)
}

func (e *AnalyzerError) Unwrap() error { return e.Err }

// ExternalServiceError is returned by the sentiment scorer or the geocoder
// when the backing service is unavailable, slow or returns garbage.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// IsExternalServiceError reports whether err wraps an ExternalServiceError.
func IsExternalServiceError(err error) bool {
	var target *ExternalServiceError
	return errors.As(err, &target)
}
