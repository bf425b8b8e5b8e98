package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// AreaPrecision is the geohash length used to describe a service area
// (roughly 5km cells).
const AreaPrecision = 5

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeoPointFrom returns the point for an optional coordinate pair
func GeoPointFrom(latitude, longitude *float64) (GeoPoint, bool) {
	if latitude == nil || longitude == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Latitude: *latitude, Longitude: *longitude}, true
}

// EncodeArea converts a point to a coarse geohash, safe to log
func EncodeArea(point GeoPoint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, AreaPrecision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
