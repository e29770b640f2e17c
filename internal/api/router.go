package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/shadowside-backend-go/internal/config"
	"github.com/jengzang/shadowside-backend-go/internal/handler"
	"github.com/jengzang/shadowside-backend-go/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Shadow    *handler.ShadowHandler
	Geocoding *handler.GeocodingHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ShadowSide API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		shadow := api.Group("/shadow")
		{
			shadow.POST("/analyze", middleware.RateLimit(limiter), h.Shadow.Analyze)
			shadow.GET("/latest", h.Shadow.Latest)
			shadow.GET("/latest/geojson", h.Shadow.LatestGeoJSON)
			shadow.GET("/latest/summary", h.Shadow.LatestSummary)
		}

		geocode := api.Group("/geocode")
		{
			geocode.GET("", middleware.RateLimit(limiter), h.Geocoding.Geocode)
			geocode.GET("/cache", h.Geocoding.ListCache)
			geocode.DELETE("/cache", h.Geocoding.EvictCache)
		}
	}

	return r
}
