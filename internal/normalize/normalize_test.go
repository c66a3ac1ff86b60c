// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package normalize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wayfarer/internal/models"
)

func pages(raw ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(raw))
	for i, r := range raw {
		out[i] = json.RawMessage(r)
	}
	return out
}

func TestNormalize_FullPage(t *testing.T) {
	t.Parallel()

	result := New().Normalize(context.Background(), pages(`{
		"textData": "Hiked to the lake at sunrise",
		"location": "  Banff, Alberta, Canada ",
		"updatedAt": "2024-07-15T08:30:00.123456Z",
		"startDate": "2024-07-10",
		"endDate": "2024-07-20T00:00:00+02:00",
		"tags": ["hiking", "Lake", "Hiking", 42, " "],
		"media": [{"type": "image", "value": "lake.jpg"}, {"type": "video"}, "junk", {"type": "image", "url": "peak.jpg"}]
	}`))

	require.Len(t, result.Entries, 1)
	assert.Empty(t, result.Skipped)

	e := result.Entries[0]
	assert.Equal(t, "Hiked to the lake at sunrise", e.Text)
	assert.Equal(t, "Banff, Alberta, Canada", e.Location)
	require.NotNil(t, e.Timestamp)
	assert.Equal(t, time.Date(2024, 7, 15, 8, 30, 0, 123456000, time.UTC), *e.Timestamp)
	days, ok := e.Duration()
	assert.True(t, ok)
	assert.InDelta(t, 10.0, days, 1e-9)
	assert.Equal(t, []string{"hiking", "Lake"}, e.Tags)
	assert.Equal(t, []models.Media{
		{Type: "image", Value: "lake.jpg"},
		{Type: "image", Value: "peak.jpg"},
	}, e.Media)
}

func TestNormalize_KeepsOrderAndCount(t *testing.T) {
	t.Parallel()

	result := New().Normalize(context.Background(), pages(
		`{"location": "Rome"}`,
		`"not an object"`,
		`null`,
		`{"location": "Oslo"}`,
	))

	require.Len(t, result.Entries, 4)
	assert.Equal(t, "Rome", result.Entries[0].Location)
	assert.Equal(t, models.Entry{}, result.Entries[1])
	assert.Equal(t, models.Entry{}, result.Entries[2])
	assert.Equal(t, "Oslo", result.Entries[3].Location)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 1, result.Skipped[0].Index)
	assert.Equal(t, "page", result.Skipped[0].Field)
	assert.Equal(t, 2, result.Skipped[1].Index)
}

func TestNormalize_MalformedFieldsBecomeAbsent(t *testing.T) {
	t.Parallel()

	result := New().Normalize(context.Background(), pages(`{
		"textData": "[[\"broken",
		"location": 12,
		"updatedAt": "yesterday",
		"startDate": "2024-13-45",
		"tags": {"a": 1},
		"media": "photo.jpg"
	}`))

	require.Len(t, result.Entries, 1)
	assert.Equal(t, models.Entry{}, result.Entries[0])

	fields := make([]string, len(result.Skipped))
	for i := range result.Skipped {
		fields[i] = result.Skipped[i].Field
	}
	assert.Equal(t, []string{FieldText, FieldLocation, FieldUpdatedAt, FieldStartDate, FieldTags, FieldMedia}, fields)

	assert.True(t, errors.Is(&result.Skipped[2], ErrBadDate), "updatedAt error should wrap ErrBadDate")
	assert.True(t, errors.Is(&result.Skipped[1], ErrWrongType), "location error should wrap ErrWrongType")
}

func TestParseText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain string", raw: `"  Lovely day  "`, want: "Lovely day"},
		{name: "missing", raw: ``, want: ""},
		{name: "null", raw: `null`, want: ""},
		{name: "blank", raw: `"   "`, want: ""},
		{name: "nested lists", raw: `[["Day one", {"bold": true}], ["Day two"]]`, want: "Day one\nDay two"},
		{name: "flat list", raw: `["first", "second"]`, want: "first\nsecond"},
		{name: "deeply nested", raw: `[[[ "inner" ]], "outer"]`, want: "inner\nouter"},
		{name: "rich text ops", raw: `[{"insert": "Hello"}, {"text": "world"}, {"other": 1}]`, want: "Hello\nworld"},
		{name: "json encoded lists", raw: `"[[\"Encoded\", null], [\"text\"]]"`, want: "Encoded\ntext"},
		{name: "undecodable encoded lists", raw: `"[not json"`, wantErr: true},
		{name: "number", raw: `3.5`, wantErr: true},
		{name: "object", raw: `{"text": "x"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseText(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: `"2024-01-15T00:00:00.000000Z"`, want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{raw: `"2024-04-15T10:20:30+05:30"`, want: time.Date(2024, 4, 15, 10, 20, 30, 0, time.UTC)},
		{raw: `"2024-04-15T10:20:30-0800"`, want: time.Date(2024, 4, 15, 10, 20, 30, 0, time.UTC)},
		{raw: `"2024-07-15T12:00:00"`, want: time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)},
		{raw: `"2024-10-15 09:15:00"`, want: time.Date(2024, 10, 15, 9, 15, 0, 0, time.UTC)},
		{raw: `"2024-10-15"`, want: time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)},
		{raw: `"15/10/2024"`, wantErr: true},
		{raw: `1700000000`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := parseTime(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v, want %v", *got, tt.want)
		})
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"array", `["beach", "food"]`, []string{"beach", "food"}},
		{"comma string", `"beach, food ,, Beach"`, []string{"beach", "food"}},
		{"case-insensitive dedupe keeps first spelling", `["Museum", "museum", "MUSEUM"]`, []string{"Museum"}},
		{"non-strings skipped", `["ski", 1, null, true]`, []string{"ski"}},
		{"missing", ``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseTags(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePayload(t *testing.T) {
	t.Parallel()

	t.Run("wrapped pages", func(t *testing.T) {
		t.Parallel()
		got, err := ParsePayload([]byte(`{"allPages": [{"location": "Lima"}, {}]}`))
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty page list is valid", func(t *testing.T) {
		t.Parallel()
		got, err := ParsePayload([]byte(`{"allPages": []}`))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("bare array", func(t *testing.T) {
		t.Parallel()
		got, err := ParsePayload([]byte(` [{"location": "Lima"}] `))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("missing allPages", func(t *testing.T) {
		t.Parallel()
		_, err := ParsePayload([]byte(`{"pages": []}`))
		var inputErr *models.InputError
		require.ErrorAs(t, err, &inputErr)
		assert.ErrorIs(t, err, models.ErrMissingPages)
	})

	t.Run("null allPages", func(t *testing.T) {
		t.Parallel()
		_, err := ParsePayload([]byte(`{"allPages": null}`))
		assert.ErrorIs(t, err, models.ErrMissingPages)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		_, err := ParsePayload([]byte(`{"allPages": [`))
		var inputErr *models.InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "malformed JSON", inputErr.Reason)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		_, err := ParsePayload(nil)
		var inputErr *models.InputError
		assert.ErrorAs(t, err, &inputErr)
	})
}
