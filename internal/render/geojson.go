package render

import (
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/routing"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Overlay styles
const (
	routeWeight   = 5
	segmentWeight = 4
	segmentAlpha  = 0.45
)

// FeatureCollection builds the map overlay for result: the full route first,
// then one colored line per classified segment in route order.
func FeatureCollection(result *models.AnalysisResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if result.Route != nil && result.Route.Len() > 0 {
		route := geojson.NewFeature(routing.PointsToLineString(result.Route.Points))
		route.Properties = geojson.Properties{
			"kind":         "route",
			"stroke":       models.ColorRoute,
			"stroke-width": routeWeight,
			"distance_km":  result.Summary.DistanceKm,
			"duration_min": result.Summary.DurationMinutes,
		}
		fc.Append(route)
		fc.BBox = geojson.NewBBox(Bounds(result.Route))
	}

	for _, seg := range result.Segments {
		line := orb.LineString{
			{seg.From.Lon, seg.From.Lat},
			{seg.To.Lon, seg.To.Lat},
		}
		f := geojson.NewFeature(line)
		f.Properties = geojson.Properties{
			"kind":           "segment",
			"index":          seg.Index,
			"direction":      string(seg.Direction),
			"stroke":         seg.Color,
			"stroke-width":   segmentWeight,
			"stroke-opacity": segmentAlpha,
			"time":           seg.Time.UTC().Format("2006-01-02T15:04:05Z"),
			"sun_bearing":    seg.SunBearing,
			"travel_bearing": seg.TravelBearing,
		}
		fc.Append(f)
	}

	return fc
}

// Bounds returns the bounding box to fit the map view to
func Bounds(route *models.Route) orb.Bound {
	return routing.PointsToLineString(route.Points).Bound()
}
