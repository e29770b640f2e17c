package service

import (
	"context"
	"fmt"

	"github.com/jengzang/shadowside-backend-go/internal/geocoding"
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/repository"
)

// GeocodingService manages the local geocode cache
type GeocodingService struct {
	repo *repository.GeocodeCacheRepository
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(repo *repository.GeocodeCacheRepository) *GeocodingService {
	return &GeocodingService{repo: repo}
}

// CachePage is one page of cached locations
type CachePage struct {
	Entries []*models.GeocodeCacheEntry `json:"entries"`
	Total   int                         `json:"total"`
	Limit   int                         `json:"limit"`
	Offset  int                         `json:"offset"`
}

// ListCache retrieves cached locations with pagination
func (s *GeocodingService) ListCache(ctx context.Context, limit, offset int) (*CachePage, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []*models.GeocodeCacheEntry{}
	}
	return &CachePage{Entries: entries, Total: total, Limit: limit, Offset: offset}, nil
}

// Evict removes a cached location so the next lookup hits the provider again
func (s *GeocodingService) Evict(ctx context.Context, query string) error {
	key := geocoding.CacheKey(query)
	if key == "" {
		return ErrMissingLocation
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to evict %q: %w", key, err)
	}
	return nil
}
