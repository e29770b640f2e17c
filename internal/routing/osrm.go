// Package routing computes driving routes between two coordinates.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/spatial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// DefaultOSRMURL is the public OSRM demo server
const DefaultOSRMURL = "https://router.project-osrm.org"

// ErrNoRoute is returned when no driving route connects the two points
var ErrNoRoute = errors.New("no route found")

// OSRMClient requests driving routes from an OSRM server
type OSRMClient struct {
	baseURL string
	profile string
	client  *http.Client
}

// NewOSRMClient creates a new OSRM client for the driving profile
func NewOSRMClient(baseURL string, client *http.Client) *OSRMClient {
	if baseURL == "" {
		baseURL = DefaultOSRMURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OSRMClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
		client:  client,
	}
}

type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
}

// Route returns the first driving route from -> to with full GeoJSON geometry
func (c *OSRMClient) Route(ctx context.Context, from, to models.GeoPoint) (*models.Route, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, c.profile, from.Lon, from.Lat, to.Lon, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build routing request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode routing response (status %d): %w", resp.StatusCode, err)
	}

	switch {
	case body.Code == "NoRoute" || body.Code == "NoSegment":
		return nil, ErrNoRoute
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("routing request failed: status %d: %s %s", resp.StatusCode, body.Code, body.Message)
	case len(body.Routes) == 0:
		return nil, ErrNoRoute
	}

	route, err := toRoute(body.Routes[0])
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Int("points", route.Len()).
		Float64("distance_m", route.DistanceMeters).
		Msg("Route computed")

	return route, nil
}

func toRoute(r osrmRoute) (*models.Route, error) {
	if r.Geometry == nil {
		return nil, fmt.Errorf("routing response has no geometry")
	}

	line, ok := r.Geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("unexpected route geometry type %q", r.Geometry.Type)
	}

	route := &models.Route{
		Points:          LineStringToPoints(line),
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}
	if route.DistanceMeters <= 0 {
		route.DistanceMeters = spatial.PathLength(route.Points)
	}
	return route, nil
}

// LineStringToPoints converts [lon, lat] positions to route points
func LineStringToPoints(line orb.LineString) []models.GeoPoint {
	points := make([]models.GeoPoint, len(line))
	for i, p := range line {
		points[i] = models.GeoPoint{Lat: p.Lat(), Lon: p.Lon()}
	}
	return points
}

// PointsToLineString converts route points to [lon, lat] positions
func PointsToLineString(points []models.GeoPoint) orb.LineString {
	line := make(orb.LineString, len(points))
	for i, p := range points {
		line[i] = orb.Point{p.Lon, p.Lat}
	}
	return line
}
