package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/shadowside-backend-go/internal/service"
	"github.com/jengzang/shadowside-backend-go/pkg/response"
)

// GeocodingHandler handles HTTP requests for location lookups
type GeocodingHandler struct {
	shadow *service.ShadowService
	cache  *service.GeocodingService
}

// NewGeocodingHandler creates a new geocoding handler
func NewGeocodingHandler(shadow *service.ShadowService, cache *service.GeocodingService) *GeocodingHandler {
	return &GeocodingHandler{shadow: shadow, cache: cache}
}

// Geocode resolves a single location
// GET /api/v1/geocode?q=
func (h *GeocodingHandler) Geocode(c *gin.Context) {
	place, err := h.shadow.Geocode(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, place)
}

// ListCache retrieves cached locations
// GET /api/v1/geocode/cache
func (h *GeocodingHandler) ListCache(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	page, err := h.cache.ListCache(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, page)
}

// EvictCache removes a cached location
// DELETE /api/v1/geocode/cache?q=
func (h *GeocodingHandler) EvictCache(c *gin.Context) {
	if err := h.cache.Evict(c.Request.Context(), c.Query("q")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Cache entry removed"})
}
