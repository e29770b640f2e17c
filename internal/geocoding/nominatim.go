// Package geocoding resolves free-text locations to coordinates.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/rs/zerolog/log"
)

// DefaultNominatimURL is the public OpenStreetMap Nominatim instance
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// ErrNotFound is returned when a location cannot be resolved
var ErrNotFound = errors.New("location not found")

// NominatimClient resolves locations with the Nominatim search API
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimClient creates a new Nominatim client
func NewNominatimClient(baseURL, userAgent string, client *http.Client) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &NominatimClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves query to the best matching place
func (c *NominatimClient) Geocode(ctx context.Context, query string) (*models.Place, error) {
	if point, ok := ParseLatLon(query); ok {
		return &models.Place{Point: point, Source: "literal"}, nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request failed: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%q: %w", query, ErrNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	log.Debug().Str("query", query).Float64("lat", lat).Float64("lon", lon).Msg("Location resolved")

	return &models.Place{
		Point:       models.GeoPoint{Lat: lat, Lon: lon},
		DisplayName: results[0].DisplayName,
		Source:      "nominatim",
	}, nil
}
