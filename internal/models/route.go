package models

import "time"

// Route is a driving route geometry returned by the routing provider.
// It is treated as immutable once received.
type Route struct {
	Points          []GeoPoint `json:"points" yaml:"points"`
	DistanceMeters  float64    `json:"distance_m" yaml:"distance_m"`
	DurationSeconds float64    `json:"duration_s" yaml:"duration_s"`
}

// Len returns the number of points in the route geometry
func (r *Route) Len() int {
	return len(r.Points)
}

// Duration returns the total travel time
func (r *Route) Duration() time.Duration {
	return time.Duration(r.DurationSeconds * float64(time.Second))
}

// TravelWindow is the start instant and total duration of a trip
type TravelWindow struct {
	Start    time.Time
	Duration time.Duration
}

// IndexFractionInstant returns Start + (index/total)·Duration.
//
// Travel time is interpolated by point-index fraction, not by distance
// travelled along the route. Dense and sparse parts of the geometry are
// assumed to take equal time per point.
func (w TravelWindow) IndexFractionInstant(index, total int) time.Time {
	if total <= 0 {
		return w.Start
	}
	offset := float64(index) / float64(total) * w.Duration.Seconds()
	return w.Start.Add(time.Duration(offset * float64(time.Second)))
}
