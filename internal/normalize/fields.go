// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package normalize

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Each parser returns the zero value and a nil error for a missing or null
// field, the zero value and an error for a malformed one.

// dateLayouts are tried in order after the zone suffix is stripped.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// jsonKind names the JSON type of raw for error messages.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

func wrongType(raw json.RawMessage, want string) error {
	return fmt.Errorf("%w: got %s, want %s", ErrWrongType, jsonKind(raw), want)
}

// parseString decodes a string field and trims it. Blank means absent.
func parseString(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", wrongType(raw, "string")
	}
	return strings.TrimSpace(s), nil
}

// parseText accepts plain text, a nested list structure such as
// [["Day one", {"bold": true}], ["Day two"]] or such a structure encoded as
// a JSON string. Parts are joined with newlines.
func parseText(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}

	if s, ok := value.(string); ok {
		if !strings.HasPrefix(strings.TrimSpace(s), "[") {
			return strings.TrimSpace(s), nil
		}
		// JSON encoded nested lists
		if err := json.Unmarshal([]byte(s), &value); err != nil {
			return "", fmt.Errorf("decode embedded text: %w", err)
		}
	}

	parts, ok := flattenText(value)
	if !ok {
		return "", wrongType(raw, "string or array")
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// flattenText collects the text parts of a decoded text value.
func flattenText(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}, true
		}
		return nil, true
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, flattenItem(item)...)
		}
		return parts, true
	default:
		return nil, false
	}
}

func flattenItem(item any) []string {
	switch v := item.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	case []any:
		// [text, attributes...] contributes its leading text only
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return flattenItem(s)
			}
		}
		parts, _ := flattenText(v)
		return parts
	case map[string]any:
		for _, key := range []string{"text", "insert"} {
			if s, ok := v[key].(string); ok {
				return flattenItem(s)
			}
		}
	}
	return nil
}

// parseTime parses an ISO-8601 like timestamp into a naive UTC time.
func parseTime(raw json.RawMessage) (*time.Time, error) {
	s, err := parseString(raw)
	if err != nil || s == "" {
		return nil, err
	}

	value := stripZone(s)
	for _, layout := range dateLayouts {
		if t, perr := time.Parse(layout, value); perr == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrBadDate, s)
}

// stripZone removes a trailing Z, ±HH:MM or ±HHMM offset. The wall clock is
// kept as is; offsets are not applied.
func stripZone(s string) string {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return s[:len(s)-1]
	}
	// Only look past the date so the dashes of 2006-01-02 are kept.
	if len(s) <= len("2006-01-02") {
		return s
	}
	clock := s[len("2006-01-02"):]
	if i := strings.LastIndexAny(clock, "+-"); i >= 0 {
		return s[:len("2006-01-02")+i]
	}
	return s
}

// parseTags accepts an array of strings or a comma separated string.
// Tags are trimmed and de-duplicated case-insensitively, first spelling wins.
func parseTags(raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return nil, nil
	}

	var candidates []string
	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if s, ok := item.(string); ok {
				candidates = append(candidates, s)
			}
		}
	} else {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, wrongType(raw, "array or string")
		}
		candidates = strings.Split(s, ",")
	}

	var tags []string
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		tag := strings.TrimSpace(c)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}

type rawMedia struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	URL   string `json:"url"`
}

// parseMedia accepts an array of {type, value} objects. Items that are not
// objects or lack a type or value are skipped; "url" is accepted for value.
func parseMedia(raw json.RawMessage) ([]models.Media, error) {
	if isNull(raw) {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, wrongType(raw, "array")
	}

	var media []models.Media
	for _, item := range items {
		var m rawMedia
		if err := json.Unmarshal(item, &m); err != nil {
			continue
		}
		value := m.Value
		if value == "" {
			value = m.URL
		}
		m.Type = strings.TrimSpace(m.Type)
		value = strings.TrimSpace(value)
		if m.Type == "" || value == "" {
			continue
		}
		media = append(media, models.Media{Type: m.Type, Value: value})
	}
	return media, nil
}
