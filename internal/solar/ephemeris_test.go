package solar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAzimuth(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"south", 0, 180},
		{"west", math.Pi / 2, 270},
		{"east", -math.Pi / 2, 90},
		{"north", math.Pi, 0},
		{"north from negative side", -math.Pi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeAzimuth(tt.raw), 1e-9)
		})
	}
}

func TestNormalizeAzimuthRange(t *testing.T) {
	for raw := -20.0; raw <= 20.0; raw += 0.01 {
		deg := NormalizeAzimuth(raw)
		assert.GreaterOrEqual(t, deg, 0.0, "raw=%f", raw)
		assert.Less(t, deg, 360.0, "raw=%f", raw)
	}
}

func TestEphemerisNoonEquinox(t *testing.T) {
	e := NewEphemeris()

	// Solar noon at Greenwich is a few minutes after 12:00 UTC around the March equinox
	noon := time.Date(2024, time.March, 20, 12, 7, 0, 0, time.UTC)

	az, el := e.Position(noon, 45, 0)
	assert.InDelta(t, 180, NormalizeAzimuth(az), 3)
	assert.InDelta(t, 45, el*180/math.Pi, 1.5)

	// Southern hemisphere sees the noon sun due north
	az, el = e.Position(noon, -45, 0)
	bearing := NormalizeAzimuth(az)
	assert.InDelta(t, 0, math.Min(bearing, 360-bearing), 3)
	assert.InDelta(t, 45, el*180/math.Pi, 1.5)
}

func TestEphemerisMorningSunInEast(t *testing.T) {
	e := NewEphemeris()
	morning := time.Date(2024, time.March, 20, 7, 0, 0, 0, time.UTC)

	az, el := e.Position(morning, 45, 0)
	bearing := NormalizeAzimuth(az)
	assert.Greater(t, bearing, 60.0)
	assert.Less(t, bearing, 130.0)
	assert.Greater(t, el, 0.0)
}

func TestEphemerisLongitudeShiftsHourAngle(t *testing.T) {
	e := NewEphemeris()

	// 12:07 UTC at 90°E is mid-afternoon: sun in the west
	afternoon := time.Date(2024, time.March, 20, 12, 7, 0, 0, time.UTC)
	az, _ := e.Position(afternoon, 20, 90)
	bearing := NormalizeAzimuth(az)
	assert.Greater(t, bearing, 180.0)
	assert.Less(t, bearing, 360.0)
}

func TestEphemerisTimes(t *testing.T) {
	e := NewEphemeris()
	date := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

	rise, set := e.Times(date, 0, 0)
	assert.WithinDuration(t, time.Date(2024, time.March, 20, 6, 4, 0, 0, time.UTC), rise, 20*time.Minute)
	assert.WithinDuration(t, time.Date(2024, time.March, 20, 18, 10, 0, 0, time.UTC), set, 20*time.Minute)
	assert.True(t, rise.Before(set))
}
