package spatial

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBearingCardinalDirections(t *testing.T) {
	origin := models.GeoPoint{Lat: 0, Lon: 0}

	tests := []struct {
		name     string
		to       models.GeoPoint
		expected float64
	}{
		{"north", models.GeoPoint{Lat: 1, Lon: 0}, 0},
		{"east", models.GeoPoint{Lat: 0, Lon: 1}, 90},
		{"south", models.GeoPoint{Lat: -1, Lon: 0}, 180},
		{"west", models.GeoPoint{Lat: 0, Lon: -1}, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Bearing(origin, tt.to), 1e-9)
		})
	}
}

func TestBearingCoincidentPoints(t *testing.T) {
	p := models.GeoPoint{Lat: 12.9716, Lon: 77.5946}
	assert.Equal(t, 0.0, Bearing(p, p))
}

func TestBearingRangeAndAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		a := models.GeoPoint{Lat: rng.Float64()*160 - 80, Lon: rng.Float64()*360 - 180}
		b := models.GeoPoint{Lat: a.Lat + rng.Float64()*0.02 - 0.01, Lon: a.Lon + rng.Float64()*0.02 - 0.01}
		if a == b {
			continue
		}

		forward := Bearing(a, b)
		back := Bearing(b, a)

		assert.GreaterOrEqual(t, forward, 0.0)
		assert.Less(t, forward, 360.0)

		// Short segments: reverse bearing is the forward one turned around
		diff := math.Abs(ClockwiseDiff(back, forward) - 180)
		assert.Less(t, diff, 0.5, "a=%v b=%v forward=%f back=%f", a, b, forward, back)
	}
}

func TestDistance(t *testing.T) {
	// One degree of latitude is roughly 111.2 km
	d := Distance(models.GeoPoint{Lat: 0, Lon: 0}, models.GeoPoint{Lat: 1, Lon: 0})
	assert.InDelta(t, 111195, d, 50)
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0.0, PathLength(nil))
	assert.Equal(t, 0.0, PathLength([]models.GeoPoint{{Lat: 1, Lon: 1}}))

	points := []models.GeoPoint{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 0}, {Lat: 2, Lon: 0}}
	assert.InDelta(t, 2*111195, PathLength(points), 100)
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(0))
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 350.0, NormalizeDegrees(-10))
	assert.Equal(t, 10.0, NormalizeDegrees(730))
	assert.InDelta(t, 180.0, NormalizeDegrees(-900), 1e-9)

	v := NormalizeDegrees(-1e-14)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 360.0)
}

func TestGeohash(t *testing.T) {
	// Reference values from geohash.org
	assert.Equal(t, "u4pruydqqvj", Geohash(models.GeoPoint{Lat: 57.64911, Lon: 10.40744}, 11))
	assert.Equal(t, "s0000", Geohash(models.GeoPoint{Lat: 0.0001, Lon: 0.0001}, 5))
	assert.Len(t, Geohash(models.GeoPoint{Lat: 12.97, Lon: 77.59}, 20), 12)
	assert.Len(t, Geohash(models.GeoPoint{Lat: 12.97, Lon: 77.59}, 0), 1)
}

func TestMeanBearing(t *testing.T) {
	mean, r := MeanBearing([]float64{350, 10}, nil)
	assert.InDelta(t, 0, math.Min(mean, 360-mean), 1e-9)
	assert.InDelta(t, math.Cos(10*math.Pi/180), r, 1e-9)

	mean, r = MeanBearing([]float64{90, 180}, []float64{3, 1})
	assert.InDelta(t, 90+math.Atan2(1, 3)*180/math.Pi, mean, 1e-9)
	assert.Less(t, r, 1.0)

	_, r = MeanBearing([]float64{0, 180}, nil)
	assert.InDelta(t, 0, r, 1e-9)

	mean, r = MeanBearing(nil, nil)
	assert.Zero(t, mean)
	assert.Zero(t, r)
}
