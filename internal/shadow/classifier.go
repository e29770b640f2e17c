// Package shadow classifies, segment by segment, which side of a vehicle the
// sun falls on along a driving route.
package shadow

import (
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/spatial"
)

// Sector bounds in degrees clockwise from the travel heading.
// Each sector is half-open: a value on a bound belongs to the next sector clockwise.
const (
	rightFrom = 45.0
	backFrom  = 135.0
	leftFrom  = 225.0
	frontFrom = 315.0
)

// Classify returns the side of the vehicle the sun is on, given the sun's
// compass bearing and the travel bearing (both degrees).
func Classify(sunBearing, travelBearing float64) models.Direction {
	return classifyDiff(spatial.ClockwiseDiff(sunBearing, travelBearing))
}

func classifyDiff(diff float64) models.Direction {
	switch {
	case diff < rightFrom || diff >= frontFrom:
		return models.DirectionFront
	case diff < backFrom:
		return models.DirectionRight
	case diff < leftFrom:
		return models.DirectionBack
	default:
		return models.DirectionLeft
	}
}
