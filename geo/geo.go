// Package geo provides the geographic primitives used by the route planner.
//
// Distances are great-circle (Haversine) on WGS-84 coordinates. They are only
// used to build search heuristics, never to snap or match geometry.
package geo

import "math"

// EARTH_RADIUS_KM is the mean radius of Earth in kilometers.
const EARTH_RADIUS_KM = 6371.0

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b Point) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLon*sinLon

	return 2 * EARTH_RADIUS_KM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
