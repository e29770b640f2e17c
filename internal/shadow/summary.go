package shadow

import (
	"math"

	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/spatial"
)

// summarize turns per-direction counts into percentages plus route totals
func summarize(counts map[models.Direction]int, route *models.Route) models.AnalysisSummary {
	total := 0
	for _, c := range counts {
		total += c
	}

	percentages := make(map[models.Direction]float64, len(models.Directions))
	for _, d := range models.Directions {
		if total == 0 {
			percentages[d] = 0
			continue
		}
		percentages[d] = roundTo1(100 * float64(counts[d]) / float64(total))
	}

	return models.AnalysisSummary{
		Counts:          counts,
		Percentages:     percentages,
		Total:           total,
		DistanceKm:      roundTo1(route.DistanceMeters / 1000),
		DurationMinutes: int(math.Round(route.DurationSeconds / 60)),
		Analyzable:      total > 0,
	}
}

// heading is the length-weighted mean travel bearing of the segments
func heading(segments []models.ClassifiedSegment) (bearing, consistency float64) {
	bearings := make([]float64, len(segments))
	lengths := make([]float64, len(segments))
	for i, seg := range segments {
		bearings[i] = seg.TravelBearing
		lengths[i] = seg.LengthMeters
	}

	bearing, consistency = spatial.MeanBearing(bearings, lengths)
	return roundTo1(bearing), math.Round(consistency*100) / 100
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
