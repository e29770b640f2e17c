package models

import "time"

// ClassifiedSegment is one analyzed sub-path of a route with the side the sun falls on
type ClassifiedSegment struct {
	Index         int       `json:"index" yaml:"index"` // index of From in the route geometry
	From          GeoPoint  `json:"from" yaml:"from"`
	To            GeoPoint  `json:"to" yaml:"to"`
	Direction     Direction `json:"direction" yaml:"direction"`
	Color         string    `json:"color" yaml:"color"`
	TravelBearing float64   `json:"travel_bearing" yaml:"travel_bearing"` // degrees, 0 = north
	SunBearing    float64   `json:"sun_bearing" yaml:"sun_bearing"`       // degrees, 0 = north
	SunElevation  float64   `json:"sun_elevation" yaml:"sun_elevation"`   // degrees above horizon
	Time          time.Time `json:"time" yaml:"time"`
	LengthMeters  float64   `json:"length_m" yaml:"length_m"`
}

// AnalysisSummary aggregates classified segments of a single run
type AnalysisSummary struct {
	Counts          map[Direction]int     `json:"counts" yaml:"counts"`
	Percentages     map[Direction]float64 `json:"percentages" yaml:"percentages"`
	Total           int                   `json:"total" yaml:"total"`
	Stride          int                   `json:"stride" yaml:"stride"`
	DistanceKm      float64               `json:"distance_km" yaml:"distance_km"`
	DurationMinutes int                   `json:"duration_min" yaml:"duration_min"`
	Sunrise         time.Time             `json:"sunrise" yaml:"sunrise"`
	Sunset          time.Time             `json:"sunset" yaml:"sunset"`

	// Heading is the length-weighted mean travel bearing in degrees.
	// HeadingConsistency is its mean resultant length, 1 for a straight route.
	Heading            float64 `json:"heading" yaml:"heading"`
	HeadingConsistency float64 `json:"heading_consistency" yaml:"heading_consistency"`

	// Analyzable is false when the route was too short to yield any segment
	Analyzable bool `json:"analyzable" yaml:"analyzable"`
}

// Percentage returns the share of segments classified as d
func (s *AnalysisSummary) Percentage(d Direction) float64 {
	if s == nil || s.Percentages == nil {
		return 0
	}
	return s.Percentages[d]
}

// AnalysisRequest is the user input that triggered an analysis
type AnalysisRequest struct {
	Start      string    `json:"start" yaml:"start"`
	End        string    `json:"end" yaml:"end"`
	TravelTime time.Time `json:"travel_time" yaml:"travel_time"`
}

// AnalysisResult is the complete output of one analysis run.
// A new result replaces the previous one entirely.
type AnalysisResult struct {
	ID        uint64              `json:"id" yaml:"id"`
	Request   AnalysisRequest     `json:"request" yaml:"request"`
	From      GeoPoint            `json:"from" yaml:"from"`
	To        GeoPoint            `json:"to" yaml:"to"`
	Route     *Route              `json:"route" yaml:"route"`
	Segments  []ClassifiedSegment `json:"segments" yaml:"segments"`
	Summary   AnalysisSummary     `json:"summary" yaml:"summary"`
	CreatedAt time.Time           `json:"created_at" yaml:"created_at"`
}
