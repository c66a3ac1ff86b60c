// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import (
	"strings"
	"time"
)

// MediaTypeImage is the media type used by photo timelines.
const MediaTypeImage = "image"

// Entry is one normalized journal page. Every optional field uses its zero
// value ("" or nil) for "absent", which the normalizer guarantees for any
// field that was missing or malformed in the raw page.
//
// Entries are built once per request and shared read-only between analyzers.
// Code that receives an Entry must not modify Tags or Media in place.
//
// Example:
//
//	e := models.Entry{
//	    Text:      "Hiked up to the glacier today, absolutely stunning views",
//	    Location:  "Chamonix, France",
//	    Timestamp: &ts,
//	    Tags:      []string{"hiking", "mountain"},
//	}
type Entry struct {
	Text      string     `json:"text,omitempty"`
	Location  string     `json:"location,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Media     []Media    `json:"media,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Media is a single attachment on a page.
type Media struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// IsImage reports whether the attachment is an image.
func (m Media) IsImage() bool {
	return strings.EqualFold(m.Type, MediaTypeImage)
}

// HasText reports whether the entry carries journal text.
func (e *Entry) HasText() bool {
	return e.Text != ""
}

// HasLocation reports whether the entry carries a place name.
func (e *Entry) HasLocation() bool {
	return e.Location != ""
}

// HasTimestamp reports whether the entry carries an update time.
func (e *Entry) HasTimestamp() bool {
	return e.Timestamp != nil
}

// Duration returns the trip length in days. The second return value is false
// when either bound is missing.
func (e *Entry) Duration() (float64, bool) {
	if e.StartDate == nil || e.EndDate == nil {
		return 0, false
	}
	return e.EndDate.Sub(*e.StartDate).Hours() / 24, true
}

// WordCount returns the number of whitespace separated words in the text.
func (e *Entry) WordCount() int {
	return len(strings.Fields(e.Text))
}

// Images returns the image attachments of the entry in input order.
func (e *Entry) Images() []Media {
	var images []Media
	for _, m := range e.Media {
		if m.IsImage() {
			images = append(images, m)
		}
	}
	return images
}

// TopLevelLocation returns the first comma separated component of the
// location, e.g. "Kyoto" for "Kyoto, Kansai, Japan".
func (e *Entry) TopLevelLocation() string {
	head, _, _ := strings.Cut(e.Location, ",")
	return strings.TrimSpace(head)
}

// Country returns the last comma separated component of the location.
func (e *Entry) Country() string {
	parts := strings.Split(e.Location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
