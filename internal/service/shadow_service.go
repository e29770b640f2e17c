package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/shadowside-backend-go/internal/geocoding"
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/routing"
	"github.com/rs/zerolog/log"
)

// Geocoder resolves a free-text location
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*models.Place, error)
}

// RouteFinder computes a driving route
type RouteFinder interface {
	Route(ctx context.Context, from, to models.GeoPoint) (*models.Route, error)
}

// Analyzer classifies a route against the sun
type Analyzer interface {
	Analyze(ctx context.Context, route *models.Route, start time.Time) (*models.AnalysisResult, error)
}

// ShadowService runs shade analyses from user input and keeps the current result
type ShadowService struct {
	geocoder Geocoder
	router   RouteFinder
	analyzer Analyzer
	store    *ResultStore
	now      func() time.Time
}

// NewShadowService creates a new shadow service
func NewShadowService(geocoder Geocoder, router RouteFinder, analyzer Analyzer, store *ResultStore) *ShadowService {
	if store == nil {
		store = NewResultStore()
	}
	return &ShadowService{
		geocoder: geocoder,
		router:   router,
		analyzer: analyzer,
		store:    store,
		now:      time.Now,
	}
}

// Analyze resolves both locations, computes the route and classifies it.
// Steps run in order: geocode start, geocode end, route, analysis.
// A zero TravelTime means now.
func (s *ShadowService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	req.Start = strings.TrimSpace(req.Start)
	req.End = strings.TrimSpace(req.End)
	if req.Start == "" || req.End == "" {
		return nil, ErrMissingLocation
	}
	if req.TravelTime.IsZero() {
		req.TravelTime = s.now()
	}

	ticket, ctx, release := s.store.Begin(ctx)
	defer release()

	result, err := s.run(ctx, req)
	if err != nil {
		if !s.store.IsCurrent(ticket) && errors.Is(err, context.Canceled) {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	result.ID = ticket.Seq
	if err := s.store.Commit(ticket, result); err != nil {
		log.Info().Uint64("id", ticket.Seq).Msg("Discarding superseded analysis result")
		return nil, err
	}

	log.Info().
		Uint64("id", result.ID).
		Str("start", req.Start).
		Str("end", req.End).
		Int("segments", result.Summary.Total).
		Float64("distance_km", result.Summary.DistanceKm).
		Msg("Shadow analysis stored")

	return result, nil
}

func (s *ShadowService) run(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	from, err := s.resolve(ctx, req.Start)
	if err != nil {
		return nil, err
	}
	to, err := s.resolve(ctx, req.End)
	if err != nil {
		return nil, err
	}

	route, err := s.router.Route(ctx, from.Point, to.Point)
	if err != nil {
		if errors.Is(err, routing.ErrNoRoute) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &ProviderError{Provider: "Routing", Err: err}
	}

	result, err := s.analyzer.Analyze(ctx, route, req.TravelTime)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze route: %w", err)
	}

	result.Request = req
	result.From = from.Point
	result.To = to.Point
	result.CreatedAt = s.now()
	return result, nil
}

func (s *ShadowService) resolve(ctx context.Context, query string) (*models.Place, error) {
	place, err := s.geocoder.Geocode(ctx, query)
	switch {
	case err == nil:
	case errors.Is(err, geocoding.ErrNotFound):
		return nil, fmt.Errorf("%q: %w", query, ErrUnresolvedLocation)
	case errors.Is(err, context.Canceled):
		return nil, err
	default:
		return nil, &ProviderError{Provider: "Geocoding", Err: err}
	}

	if !place.Point.Valid() {
		return nil, fmt.Errorf("%q resolved to out of range coordinates %s: %w", query, place.Point, ErrUnresolvedLocation)
	}
	return place, nil
}

// Geocode resolves a single location
func (s *ShadowService) Geocode(ctx context.Context, query string) (*models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingLocation
	}
	return s.resolve(ctx, query)
}

// Current returns the currently displayed result, or nil
func (s *ShadowService) Current() *models.AnalysisResult {
	return s.store.Current()
}
