// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package normalize turns raw journal pages into models.Entry values.

Pages arrive as loosely shaped JSON objects. Every field is optional and may
carry the wrong type, so each field has its own parser returning a value or
an error. A field error becomes a models.RecordError and the field is left
absent; the page itself is always kept, so len(Result.Entries) equals the
number of input pages and entries stay in input order.

Field handling:

  - textData: plain string, nested lists ([[text, attrs], ...]) or such
    lists encoded as a JSON string; parts are joined with newlines
  - location: trimmed string
  - updatedAt, startDate, endDate: ISO-8601 with the zone suffix stripped
  - tags: array of strings or a comma separated string, de-duplicated
  - media: array of {type, value} objects

Usage:

	pages, err := normalize.ParsePayload(body)
	if err != nil {
	    // *models.InputError
	}
	result := normalize.New().Normalize(ctx, pages)
	for _, skipped := range result.Skipped {
	    log.Printf("%v", &skipped)
	}
*/
package normalize
