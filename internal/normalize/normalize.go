// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package normalize

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Page field names as sent by the journal client.
const (
	FieldText      = "textData"
	FieldLocation  = "location"
	FieldUpdatedAt = "updatedAt"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldTags      = "tags"
	FieldMedia     = "media"

	// fieldPage marks errors that concern the page as a whole.
	fieldPage = "page"
)

var (
	// ErrWrongType is wrapped by RecordErrors for values of an unexpected JSON type.
	ErrWrongType = errors.New("unexpected JSON type")
	// ErrBadDate is wrapped by RecordErrors for unparsable dates.
	ErrBadDate = errors.New("unrecognized date format")
)

// Result is the outcome of normalizing one batch. Entries has exactly one
// element per input page, in input order. Skipped lists every field that was
// dropped; dropping a field never drops the page.
type Result struct {
	Entries []models.Entry
	Skipped []models.RecordError
}

// Normalizer converts raw journal pages into entries.
type Normalizer struct{}

// New returns a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// pageResult is the per-page outcome folded into Result.
type pageResult struct {
	entry   models.Entry
	skipped []models.RecordError
}

// Normalize parses every page. It never fails: a malformed field becomes
// absent and is reported in Result.Skipped.
func (n *Normalizer) Normalize(ctx context.Context, pages []json.RawMessage) Result {
	result := Result{Entries: make([]models.Entry, 0, len(pages))}

	for i, raw := range pages {
		pr := n.normalizePage(i, raw)
		result.Entries = append(result.Entries, pr.entry)
		result.Skipped = append(result.Skipped, pr.skipped...)
	}

	if len(result.Skipped) > 0 {
		logger := logging.Ctx(ctx)
		for i := range result.Skipped {
			rerr := &result.Skipped[i]
			metrics.NormalizerSkippedFields.WithLabelValues(rerr.Field).Inc()
			logger.Debug().Err(rerr).Int("page", rerr.Index).Str("field", rerr.Field).Msg("Dropped malformed field")
		}
		logger.Info().
			Int("pages", len(pages)).
			Int("skipped_fields", len(result.Skipped)).
			Msg("Normalized pages with dropped fields")
	}

	return result
}

func (n *Normalizer) normalizePage(index int, raw json.RawMessage) pageResult {
	var pr pageResult

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		if err == nil {
			err = fmt.Errorf("%w: page is null", ErrWrongType)
		}
		pr.skipped = append(pr.skipped, models.RecordError{Index: index, Field: fieldPage, Err: err})
		return pr
	}

	// record keeps a field value or turns its error into a RecordError.
	record := func(field string, err error) bool {
		if err != nil {
			pr.skipped = append(pr.skipped, models.RecordError{Index: index, Field: field, Err: err})
			return false
		}
		return true
	}

	if text, err := parseText(fields[FieldText]); record(FieldText, err) {
		pr.entry.Text = text
	}
	if loc, err := parseString(fields[FieldLocation]); record(FieldLocation, err) {
		pr.entry.Location = loc
	}
	if ts, err := parseTime(fields[FieldUpdatedAt]); record(FieldUpdatedAt, err) {
		pr.entry.Timestamp = ts
	}
	if ts, err := parseTime(fields[FieldStartDate]); record(FieldStartDate, err) {
		pr.entry.StartDate = ts
	}
	if ts, err := parseTime(fields[FieldEndDate]); record(FieldEndDate, err) {
		pr.entry.EndDate = ts
	}
	if tags, err := parseTags(fields[FieldTags]); record(FieldTags, err) {
		pr.entry.Tags = tags
	}
	if media, err := parseMedia(fields[FieldMedia]); record(FieldMedia, err) {
		pr.entry.Media = media
	}

	return pr
}

// ParsePayload extracts the page list from a request body. It accepts the
// wire shape {"allPages": [...]} and, for files exported by other tools, a
// bare JSON array of pages.
func ParsePayload(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &models.InputError{Reason: "empty body"}
	}

	if trimmed[0] == '[' {
		var pages []json.RawMessage
		if err := json.Unmarshal(trimmed, &pages); err != nil {
			return nil, &models.InputError{Reason: "malformed JSON", Err: err}
		}
		return pages, nil
	}

	var payload struct {
		AllPages *[]json.RawMessage `json:"allPages"`
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, &models.InputError{Reason: "malformed JSON", Err: err}
	}
	if payload.AllPages == nil {
		return nil, &models.InputError{Reason: "missing page collection", Err: models.ErrMissingPages}
	}
	return *payload.AllPages, nil
}
