// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geo

import (
	"context"
	"math"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Climate zones by absolute latitude.
const (
	ZoneTropical    = "Tropical"
	ZoneSubtropical = "Subtropical"
	ZoneTemperate   = "Temperate"
	ZonePolar       = "Polar"
)

// Zone boundaries in degrees: the tropics and the polar circles.
const (
	tropicLatitude      = 23.44
	subtropicLatitude   = 35.0
	polarCircleLatitude = 66.56
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves place names to coordinates.
//
// Geocode returns found=false with a nil error when the service answered but
// does not know the name. A non-nil error means the service itself failed;
// implementations wrap it in *models.ExternalServiceError.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, name string) (p Point, found bool, err error)
}

// Distance returns the great-circle distance in kilometers (haversine).
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// ClimateZone classifies a latitude into a coarse climate zone.
func ClimateZone(lat float64) string {
	abs := math.Abs(lat)
	switch {
	case abs < tropicLatitude:
		return ZoneTropical
	case abs < subtropicLatitude:
		return ZoneSubtropical
	case abs < polarCircleLatitude:
		return ZoneTemperate
	default:
		return ZonePolar
	}
}

// NormalizeName folds a place name into a cache key.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
