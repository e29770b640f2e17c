package spatial

import (
	"math"
)

// MeanBearing returns the weighted circular mean of bearings in degrees,
// normalized to [0, 360), and the mean resultant length R in [0, 1].
// R close to 1 means the bearings agree; R close to 0 means no dominant
// heading, in which case the mean is meaningless. weights may be nil.
func MeanBearing(bearings, weights []float64) (mean, r float64) {
	if len(bearings) == 0 {
		return 0, 0
	}

	var sumSin, sumCos, sumWeights float64
	for i, b := range bearings {
		w := 1.0
		if weights != nil && i < len(weights) {
			w = weights[i]
		}
		rad := b * math.Pi / 180
		sumSin += w * math.Sin(rad)
		sumCos += w * math.Cos(rad)
		sumWeights += w
	}

	if sumWeights == 0 {
		return 0, 0
	}

	mean = NormalizeDegrees(math.Atan2(sumSin, sumCos) * 180 / math.Pi)
	r = math.Hypot(sumSin, sumCos) / sumWeights
	return mean, r
}
