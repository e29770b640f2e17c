package spatial

import "math"

// NormalizeDegrees wraps an angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg+360, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can return 360 for tiny negative inputs after the shift
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// ClockwiseDiff returns how far target lies clockwise from reference, in [0, 360)
func ClockwiseDiff(target, reference float64) float64 {
	return NormalizeDegrees(target - reference)
}
