// Package api wires providers, services and handlers into an HTTP application.
package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/shadowside-backend-go/internal/config"
	"github.com/jengzang/shadowside-backend-go/internal/database"
	"github.com/jengzang/shadowside-backend-go/internal/geocoding"
	"github.com/jengzang/shadowside-backend-go/internal/handler"
	"github.com/jengzang/shadowside-backend-go/internal/middleware"
	"github.com/jengzang/shadowside-backend-go/internal/repository"
	"github.com/jengzang/shadowside-backend-go/internal/routing"
	"github.com/jengzang/shadowside-backend-go/internal/service"
	"github.com/jengzang/shadowside-backend-go/internal/shadow"
	"github.com/jengzang/shadowside-backend-go/internal/solar"
	"github.com/rs/zerolog/log"
)

// App holds the wired application
type App struct {
	DB        *sql.DB
	Shadow    *service.ShadowService
	Geocoding *service.GeocodingService
	Limiter   *middleware.RateLimiter
	Router    *gin.Engine

	routes *routing.CachedRouter
}

// New opens the database and wires the real providers
func New(cfg *config.Config) (*App, error) {
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	repo := repository.NewGeocodeCacheRepository(db)

	geocoder := geocoding.NewCachedGeocoder(
		geocoding.NewNominatimClient(cfg.NominatimURL, cfg.UserAgent, client),
		repo,
	)
	routes := routing.NewCachedRouter(routing.NewOSRMClient(cfg.OSRMURL, client), cfg.RouteTTL)
	engine := shadow.NewEngine(solar.NewEphemeris())

	app := &App{
		DB:        db,
		Shadow:    service.NewShadowService(geocoder, routes, engine, service.NewResultStore()),
		Geocoding: service.NewGeocodingService(repo),
		Limiter:   middleware.NewRateLimiter(cfg.RateLimit, time.Minute),
		routes:    routes,
	}

	app.Router = SetupRouter(cfg, Handlers{
		Shadow:    handler.NewShadowHandler(app.Shadow),
		Geocoding: handler.NewGeocodingHandler(app.Shadow, app.Geocoding),
	}, app.Limiter)

	return app, nil
}

// Close releases the database and background workers
func (a *App) Close() error {
	stats := a.routes.Stats()
	log.Debug().
		Uint64("hits", stats.Hits).
		Uint64("misses", stats.Misses).
		Int("size", stats.Size).
		Msg("Route cache closed")

	a.routes.Close()
	return a.DB.Close()
}
