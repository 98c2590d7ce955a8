// Package geo provides great-circle distance math over a spherical Earth.
// It has zero dependencies and no state.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for all distance math.
const EarthRadiusKm = 6371.0

// SentinelDistanceKm stands in for a guess that carried no coordinate
// (a forced timeout). It exceeds every distance the scoring rule can
// distinguish, so the evaluation always fails and awards zero points.
const SentinelDistanceKm = 20000.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the haversine great-circle distance between a and b
// in kilometres. Out-of-range coordinates are not validated; garbage in,
// garbage out is the caller's responsibility.
func DistanceKm(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
