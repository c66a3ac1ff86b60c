// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// InsightsRequest is the body of every insight endpoint.
type InsightsRequest struct {
	// AllPages holds the raw journal pages. Each page is normalized on its
	// own, so one malformed page never rejects the request.
	AllPages []json.RawMessage `json:"allPages" validate:"required"`
}

// requestError carries the HTTP status a request decoding failure maps to.
type requestError struct {
	status  int
	message string
	err     error
}

func (e *requestError) Error() string { return e.message }

func (e *requestError) Unwrap() error { return e.err }

var errUnsupportedMediaType = errors.New("content type must be application/json")

// isJSONContentType accepts application/json and any +json media type.
func isJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// decodeInsightsRequest reads, decodes and validates the request body. The
// body is capped at maxBytes.
func decodeInsightsRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (*InsightsRequest, *requestError) {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		return nil, &requestError{
			status:  http.StatusUnsupportedMediaType,
			message: errUnsupportedMediaType.Error(),
			err:     errUnsupportedMediaType,
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &requestError{
				status:  http.StatusRequestEntityTooLarge,
				message: "request body too large",
				err:     err,
			}
		}
		return nil, &requestError{status: http.StatusBadRequest, message: "failed to read request body", err: err}
	}

	var req InsightsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		inputErr := &models.InputError{Reason: "malformed JSON", Err: err}
		return nil, &requestError{status: http.StatusBadRequest, message: "malformed JSON body", err: inputErr}
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		inputErr := &models.InputError{Reason: verr.Error(), Err: models.ErrMissingPages}
		return nil, &requestError{status: http.StatusBadRequest, message: verr.Error(), err: inputErr}
	}

	return &req, nil
}
