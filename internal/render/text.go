// Package render presents analysis results as text and GeoJSON overlays.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jengzang/shadowside-backend-go/internal/models"
)

// summaryOrder is the order percentages are listed in
var summaryOrder = []models.Direction{
	models.DirectionLeft,
	models.DirectionRight,
	models.DirectionFront,
	models.DirectionBack,
}

// SunTimes formats the sunrise/sunset line in loc
func SunTimes(summary *models.AnalysisSummary, loc *time.Location) string {
	return fmt.Sprintf("Sunrise: %s | Sunset: %s",
		clock(summary.Sunrise, loc), clock(summary.Sunset, loc))
}

// Summary formats the distance, duration and per-side percentages
func Summary(summary *models.AnalysisSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Route Distance: %.1f km | Duration: %d min\n", summary.DistanceKm, summary.DurationMinutes)
	b.WriteString("Shadow Analysis:\n")

	if !summary.Analyzable {
		b.WriteString("Route too short to analyze\n")
		return b.String()
	}

	for _, d := range summaryOrder {
		fmt.Fprintf(&b, "%s: %.1f%%\n", d, summary.Percentage(d))
	}
	return b.String()
}

// WriteText writes the full text report of result to w
func WriteText(w io.Writer, result *models.AnalysisResult) error {
	loc := result.Request.TravelTime.Location()
	if result.Request.TravelTime.IsZero() {
		loc = time.Local
	}

	_, err := fmt.Fprintf(w, "%s\n%s", SunTimes(&result.Summary, loc), Summary(&result.Summary))
	return err
}

func clock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.In(loc).Format("15:04:05")
}
