package routing

import (
	"context"
	"time"

	"github.com/jengzang/shadowside-backend-go/internal/cache"
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/spatial"
)

// keyPrecision is the geohash length of cached endpoints, about 5 m
const keyPrecision = 9

// Finder computes a route between two points
type Finder interface {
	Route(ctx context.Context, from, to models.GeoPoint) (*models.Route, error)
}

// CachedRouter keeps recently computed routes for a TTL
type CachedRouter struct {
	next   Finder
	routes *cache.Cache[*models.Route]
}

// NewCachedRouter wraps next with a route cache
func NewCachedRouter(next Finder, ttl time.Duration) *CachedRouter {
	return &CachedRouter{
		next:   next,
		routes: cache.New[*models.Route](ttl),
	}
}

// Route returns a cached route for the same endpoints or asks next
func (r *CachedRouter) Route(ctx context.Context, from, to models.GeoPoint) (*models.Route, error) {
	key := RouteKey(from, to)

	if route, ok := r.routes.Get(key); ok {
		return route, nil
	}

	route, err := r.next.Route(ctx, from, to)
	if err != nil {
		return nil, err
	}

	r.routes.Set(key, route)
	return route, nil
}

// Stats returns the route cache counters
func (r *CachedRouter) Stats() cache.Stats {
	return r.routes.Stats()
}

// Close stops the cache cleanup goroutine
func (r *CachedRouter) Close() {
	r.routes.Close()
}

// RouteKey identifies a route by the geohash cells of its endpoints
func RouteKey(from, to models.GeoPoint) string {
	return spatial.Geohash(from, keyPrecision) + ":" + spatial.Geohash(to, keyPrecision)
}
