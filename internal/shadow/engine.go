package shadow

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/solar"
	"github.com/jengzang/shadowside-backend-go/internal/spatial"
	"github.com/rs/zerolog/log"
)

// ErrNoRoute is returned when Analyze is called without a route
var ErrNoRoute = errors.New("shadow: route is required")

// SolarPositioner provides the sun's position and the day's sunrise/sunset.
// Azimuth is in radians from due south, positive towards the west.
type SolarPositioner interface {
	Position(t time.Time, lat, lon float64) (azimuth, elevation float64)
	Times(date time.Time, lat, lon float64) (sunrise, sunset time.Time)
}

// Engine runs the shadow-side analysis of a single route
type Engine struct {
	sun          SolarPositioner
	SampleTarget int
}

// NewEngine creates a new engine using sun for solar lookups
func NewEngine(sun SolarPositioner) *Engine {
	return &Engine{
		sun:          sun,
		SampleTarget: SampleTarget,
	}
}

// Analyze samples the route, classifies each segment against the sun's
// position at the interpolated travel time and aggregates the result.
//
// A route too short to yield any segment is not an error: the summary has
// zero percentages and Analyzable set to false.
func (e *Engine) Analyze(ctx context.Context, route *models.Route, start time.Time) (*models.AnalysisResult, error) {
	if route == nil {
		return nil, ErrNoRoute
	}

	n := route.Len()
	window := models.TravelWindow{Start: start, Duration: route.Duration()}
	samples := Sample(route.Points, e.SampleTarget)

	counts := make(map[models.Direction]int, len(models.Directions))
	for _, d := range models.Directions {
		counts[d] = 0
	}

	segments := make([]models.ClassifiedSegment, 0, len(samples))
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seg := e.classify(s, window.IndexFractionInstant(s.Index, n))
		counts[seg.Direction]++
		segments = append(segments, seg)
	}

	summary := summarize(counts, route)
	summary.Heading, summary.HeadingConsistency = heading(segments)
	summary.Stride = Stride(n, e.SampleTarget)
	if n > 0 {
		origin := route.Points[0]
		summary.Sunrise, summary.Sunset = e.sun.Times(start, origin.Lat, origin.Lon)
	}

	log.Debug().
		Int("points", n).
		Int("segments", summary.Total).
		Int("stride", summary.Stride).
		Bool("analyzable", summary.Analyzable).
		Msg("Shadow analysis completed")

	return &models.AnalysisResult{
		Route:    route,
		Segments: segments,
		Summary:  summary,
	}, nil
}

func (e *Engine) classify(s Segment, at time.Time) models.ClassifiedSegment {
	travel := spatial.Bearing(s.From, s.To)
	azimuth, elevation := e.sun.Position(at, s.From.Lat, s.From.Lon)
	sun := solar.NormalizeAzimuth(azimuth)
	direction := Classify(sun, travel)

	return models.ClassifiedSegment{
		Index:         s.Index,
		From:          s.From,
		To:            s.To,
		Direction:     direction,
		Color:         direction.Color(),
		TravelBearing: travel,
		SunBearing:    sun,
		SunElevation:  elevation * 180 / math.Pi,
		Time:          at,
		LengthMeters:  spatial.Distance(s.From, s.To),
	}
}
