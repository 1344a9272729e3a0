package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/study-air/internal/models"
)

var (
	newDelhi = models.GeoPoint{Lat: 28.6139, Lon: 77.2090}
	paris    = models.GeoPoint{Lat: 48.8566, Lon: 2.3522}
	sydney   = models.GeoPoint{Lat: -33.8688, Lon: 151.2093}
)

func TestDistance_SamePointIsZero(t *testing.T) {
	for _, p := range []models.GeoPoint{newDelhi, paris, sydney, {}, {Lat: 90, Lon: 180}} {
		assert.Equal(t, 0.0, Distance(p, p), "point %+v", p)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]models.GeoPoint{
		{newDelhi, paris},
		{paris, sydney},
		{sydney, {Lat: 38.0, Lon: -97.0}},
	}
	for _, pair := range pairs {
		assert.InDelta(t, Distance(pair[0], pair[1]), Distance(pair[1], pair[0]), 1e-9)
	}
}

func TestDistance_NewDelhiToParis(t *testing.T) {
	assert.InDelta(t, 6590.0, Distance(newDelhi, paris), 5.0)
}

func TestDistance_Antipodal(t *testing.T) {
	d := Distance(models.GeoPoint{Lat: 0, Lon: 0}, models.GeoPoint{Lat: 0, Lon: 180})
	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}

// Out-of-range coordinates are accepted and still produce a finite number.
func TestDistance_OutOfRangeInputs(t *testing.T) {
	d := Distance(models.GeoPoint{Lat: 120, Lon: 400}, models.GeoPoint{Lat: -200, Lon: -500})
	assert.False(t, math.IsNaN(d))
	assert.False(t, math.IsInf(d, 0))
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestInterpolatePath_Endpoints(t *testing.T) {
	path := InterpolatePath(newDelhi, paris, DefaultSteps)
	require.Len(t, path, DefaultSteps+1)
	assert.Equal(t, newDelhi, path[0])
	assert.Equal(t, paris, path[DefaultSteps])
}

func TestInterpolatePath_ExactEndpointsBothWays(t *testing.T) {
	points := []models.GeoPoint{newDelhi, paris, sydney, {Lat: 51.509, Lon: -0.118}, {Lat: -26.2041, Lon: 28.0473}}
	for _, a := range points {
		for _, b := range points {
			path := InterpolatePath(a, b, DefaultSteps)
			assert.Equal(t, a, path[0])
			assert.Equal(t, b, path[DefaultSteps])
		}
	}
}

func TestInterpolatePath_Linear(t *testing.T) {
	a := models.GeoPoint{Lat: 0, Lon: 0}
	b := models.GeoPoint{Lat: 10, Lon: -20}
	path := InterpolatePath(a, b, 4)
	require.Len(t, path, 5)
	assert.Equal(t, models.GeoPoint{Lat: 5, Lon: -10}, path[2])
	assert.Equal(t, models.GeoPoint{Lat: 2.5, Lon: -5}, path[1])
}

func TestInterpolatePath_Restartable(t *testing.T) {
	assert.Equal(t, InterpolatePath(paris, sydney, 16), InterpolatePath(paris, sydney, 16))
}

func TestInterpolatePath_NonPositiveSteps(t *testing.T) {
	for _, steps := range []int{0, -3} {
		path := InterpolatePath(paris, sydney, steps)
		require.Len(t, path, 2)
		assert.Equal(t, paris, path[0])
		assert.Equal(t, sydney, path[1])
	}
}
