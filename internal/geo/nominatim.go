// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/wayfarer/internal/breaker"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// NominatimGeocoder resolves names with an OpenStreetMap Nominatim server.
//
// Requests are spaced by minDelay (the public instance allows one request
// per second) and go through a circuit breaker. Failures are returned as
// *models.ExternalServiceError.
type NominatimGeocoder struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	breaker   *breaker.Breaker[Lookup]
}

// nominatimPlace is one element of the /search response. Coordinates are
// encoded as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder creates a client for the server at baseURL.
func NewNominatimGeocoder(baseURL, userAgent string, timeout, minDelay time.Duration) *NominatimGeocoder {
	limit := rate.Inf
	if minDelay > 0 {
		limit = rate.Every(minDelay)
	}
	return &NominatimGeocoder{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		limiter:   rate.NewLimiter(limit, 1),
		breaker:   breaker.New[Lookup](breaker.DefaultConfig("geocoder-nominatim")),
	}
}

// Name implements Geocoder.
func (g *NominatimGeocoder) Name() string { return "nominatim" }

// Geocode implements Geocoder.
func (g *NominatimGeocoder) Geocode(ctx context.Context, name string) (Point, bool, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return Point{}, false, nil
	}

	start := time.Now()
	if err := g.limiter.Wait(ctx); err != nil {
		metrics.RecordGeocode(g.Name(), "error", time.Since(start))
		return Point{}, false, &models.ExternalServiceError{Service: "geocoder", Err: err}
	}

	res, err := g.breaker.Execute(func() (Lookup, error) {
		return g.search(ctx, query)
	})
	if err != nil {
		metrics.RecordGeocode(g.Name(), "error", time.Since(start))
		if !errors.Is(err, context.Canceled) {
			logging.Ctx(ctx).Warn().Err(err).Str("location", query).Msg("Nominatim lookup failed")
		}
		return Point{}, false, &models.ExternalServiceError{Service: "geocoder", Err: err}
	}

	result := "not_found"
	if res.Found {
		result = "found"
	}
	metrics.RecordGeocode(g.Name(), result, time.Since(start))
	return res.Point, res.Found, nil
}

func (g *NominatimGeocoder) search(ctx context.Context, query string) (Lookup, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	reqURL := g.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return Lookup{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Lookup{}, fmt.Errorf("failed to query Nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Lookup{}, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return Lookup{}, fmt.Errorf("failed to decode Nominatim response: %w", err)
	}
	if len(places) == 0 {
		return Lookup{Found: false}, nil
	}

	p, err := parsePlace(places[0])
	if err != nil {
		return Lookup{}, err
	}
	return Lookup{Point: p, Found: true}, nil
}

func parsePlace(place nominatimPlace) (Point, error) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", place.Lat, err)
	}
	lon, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", place.Lon, err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Point{}, fmt.Errorf("coordinates out of range: %f,%f", lat, lon)
	}
	return Point{Lat: lat, Lon: lon}, nil
}
