// Package geo holds the flight geometry: haversine distance and the linear
// path used to animate a flight.
package geo

import (
	"math"

	"github.com/ukydev/study-air/internal/models"
)

// EarthRadiusKm is the mean radius of the sphere used by Distance.
const EarthRadiusKm = 6371.0

// DefaultSteps is the number of path segments produced for a flight.
const DefaultSteps = 64

// Distance returns the great-circle distance in kilometers between two points.
// Coordinates are not range checked.
func Distance(a, b models.GeoPoint) float64 {
	phi1 := toRad(a.Lat)
	phi2 := toRad(b.Lat)
	dPhi := toRad(b.Lat - a.Lat)
	dLambda := toRad(b.Lon - a.Lon)

	s := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
	return EarthRadiusKm * c
}

// InterpolatePath returns steps+1 points from a to b, both inclusive.
// Latitude and longitude are interpolated independently and linearly, so the
// result is not a geodesic. steps below 1 is treated as 1.
func InterpolatePath(a, b models.GeoPoint, steps int) []models.GeoPoint {
	if steps < 1 {
		steps = 1
	}
	pts := make([]models.GeoPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, lerp(a, b, t))
	}
	return pts
}

// lerp weights both ends so t=0 and t=1 reproduce a and b exactly.
func lerp(a, b models.GeoPoint, t float64) models.GeoPoint {
	return models.GeoPoint{Lat: a.Lat*(1-t) + b.Lat*t, Lon: a.Lon*(1-t) + b.Lon*t}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
