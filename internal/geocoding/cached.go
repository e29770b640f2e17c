package geocoding

import (
	"context"
	"errors"
	"strings"

	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// Resolver resolves a free-text query to a place
type Resolver interface {
	Geocode(ctx context.Context, query string) (*models.Place, error)
}

// CachedGeocoder consults the local geocode cache before the remote resolver
type CachedGeocoder struct {
	next Resolver
	repo *repository.GeocodeCacheRepository
}

// NewCachedGeocoder creates a geocoder caching next's answers in repo
func NewCachedGeocoder(next Resolver, repo *repository.GeocodeCacheRepository) *CachedGeocoder {
	return &CachedGeocoder{next: next, repo: repo}
}

// Geocode resolves query, serving repeated lookups from the cache.
// Literal coordinates never touch the cache.
func (g *CachedGeocoder) Geocode(ctx context.Context, query string) (*models.Place, error) {
	if point, ok := ParseLatLon(query); ok {
		return &models.Place{Point: point, Source: "literal"}, nil
	}

	key := CacheKey(query)

	entry, err := g.repo.Get(ctx, key)
	switch {
	case err == nil:
		return &models.Place{Point: entry.Point(), DisplayName: entry.DisplayName, Source: "cache"}, nil
	case !errors.Is(err, repository.ErrNotFound):
		log.Warn().Err(err).Str("query", key).Msg("Geocode cache lookup failed")
	}

	place, err := g.next.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}

	if !place.Point.Valid() {
		log.Warn().Str("query", key).Str("point", place.Point.String()).Msg("Not caching out of range location")
		return place, nil
	}

	if err := g.repo.Save(ctx, &models.GeocodeCacheEntry{
		Query:       key,
		Latitude:    place.Point.Lat,
		Longitude:   place.Point.Lon,
		DisplayName: place.DisplayName,
		Provider:    place.Source,
	}); err != nil {
		log.Warn().Err(err).Str("query", key).Msg("Failed to cache geocoding result")
	}

	return place, nil
}

// CacheKey normalizes a free-text query for cache lookups
func CacheKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
