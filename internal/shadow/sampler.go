package shadow

import "github.com/jengzang/shadowside-backend-go/internal/models"

// SampleTarget is the number of segments a route is thinned towards
const SampleTarget = 120

// Segment is a pair of sampled route points
type Segment struct {
	Index int // index of From in the route geometry
	From  models.GeoPoint
	To    models.GeoPoint
}

// Stride returns the sampling interval for n points and target s: max(1, floor(n/s))
func Stride(n, s int) int {
	if s <= 0 {
		return 1
	}
	return max(1, n/s)
}

// Sample walks points at a fixed stride and returns consecutive sample pairs
// for every i = 0, stride, 2·stride, ... with i+stride < len(points).
// Only the tail shorter than one stride is dropped.
func Sample(points []models.GeoPoint, target int) []Segment {
	stride := Stride(len(points), target)

	var segments []Segment
	for i := 0; i+stride < len(points); i += stride {
		segments = append(segments, Segment{
			Index: i,
			From:  points[i],
			To:    points[i+stride],
		})
	}
	return segments
}
