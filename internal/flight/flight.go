// Package flight computes simulated flights from the fixed origin to the
// destination countries.
package flight

import (
	"errors"
	"math"

	"github.com/ukydev/study-air/internal/geo"
	"github.com/ukydev/study-air/internal/models"
)

// DefaultSpeedKmh is a typical cruising speed.
const DefaultSpeedKmh = 900.0

var ErrInvalidSpeed = errors.New("speed_kmh must be a positive number")

// Compute returns the flight to country at speedKmh.
//
// An unknown country is not an error: the result carries the requested name,
// zero distance and duration, and an empty path.
func Compute(country string, speedKmh float64) (models.FlightResult, error) {
	if math.IsNaN(speedKmh) || math.IsInf(speedKmh, 0) || speedKmh <= 0 {
		return models.FlightResult{}, ErrInvalidSpeed
	}

	dest, ok := LookupCountry(country)
	if !ok {
		return models.FlightResult{Country: country, Path: []models.GeoPoint{}}, nil
	}

	d := geo.Distance(Origin, dest.Point)
	hours := d / speedKmh
	return models.FlightResult{
		Country:         country,
		DistanceKm:      math.Round(d*100) / 100,
		DurationMinutes: int(math.RoundToEven(hours * 60)),
		Path:            geo.InterpolatePath(Origin, dest.Point, geo.DefaultSteps),
	}, nil
}
