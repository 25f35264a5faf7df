// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package geo provides great-circle distance helpers shared by the
// recommendation engine, the route optimizer and the place providers.
package geo

import (
	"fmt"
	"math"

	"github.com/tomtom215/sendero/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used by DistanceMeters.
const EarthRadiusMeters = 6371000.0

// metersPerDegreeLat is the approximate length of one degree of latitude.
const metersPerDegreeLat = EarthRadiusMeters * math.Pi / 180

// Haversine returns the great-circle distance in meters between two coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// Rounding can push a past 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceMeters returns the great-circle distance between a and b in meters.
// It is symmetric and zero for identical points.
func DistanceMeters(a, b models.Location) float64 {
	return Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// PlaceDistance returns the distance from origin to a place in meters.
func PlaceDistance(origin models.Location, p *models.Place) float64 {
	return Haversine(origin.Latitude, origin.Longitude, p.Latitude, p.Longitude)
}

// IsWithinRadius reports whether point lies at most radiusMeters from center.
func IsWithinRadius(point, center models.Location, radiusMeters float64) bool {
	return DistanceMeters(point, center) <= radiusMeters
}

// FormatDistance renders a distance for display: rounded meters below one
// kilometer ("750 m"), kilometers with one decimal otherwise ("1.2 km").
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// ValidCoordinate reports whether lat/lon are finite and within range.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BoundingBox is a latitude/longitude rectangle.
type BoundingBox struct {
	MinLat, MinLon, MaxLat, MaxLon float64
}

// BoundsAround returns a box that encloses the circle of radiusMeters around
// center. Longitude span is widened by the cosine of the latitude and capped
// near the poles.
func BoundsAround(center models.Location, radiusMeters float64) BoundingBox {
	dLat := radiusMeters / metersPerDegreeLat
	cosLat := math.Cos(center.Latitude * math.Pi / 180.0)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLon := radiusMeters / (metersPerDegreeLat * cosLat)

	return BoundingBox{
		MinLat: math.Max(-90, center.Latitude-dLat),
		MaxLat: math.Min(90, center.Latitude+dLat),
		MinLon: math.Max(-180, center.Longitude-dLon),
		MaxLon: math.Min(180, center.Longitude+dLon),
	}
}

// Contains reports whether the coordinate lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Offset returns the location reached by moving northMeters north and eastMeters
// east of origin. Accurate for the short distances used in fixtures and tests.
func Offset(origin models.Location, northMeters, eastMeters float64) models.Location {
	cosLat := math.Cos(origin.Latitude * math.Pi / 180.0)
	return models.Location{
		Latitude:  origin.Latitude + northMeters/metersPerDegreeLat,
		Longitude: origin.Longitude + eastMeters/(metersPerDegreeLat*cosLat),
	}
}
