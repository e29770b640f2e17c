// Package solar provides sun position and sunrise/sunset lookups and the
// conversion from the south-referenced astronomical azimuth to compass bearings.
package solar

import (
	"math"

	"github.com/jengzang/shadowside-backend-go/internal/spatial"
)

// NormalizeAzimuth converts an azimuth in radians measured from due south
// (westward positive) into a compass bearing in degrees [0, 360) measured
// from due north, clockwise.
func NormalizeAzimuth(rawRadians float64) float64 {
	return spatial.NormalizeDegrees(rawRadians*180/math.Pi + 180)
}
