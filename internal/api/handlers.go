// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/sendero/internal/places"
	"github.com/tomtom215/sendero/internal/recommend"
	"github.com/tomtom215/sendero/internal/route"
)

// ReadinessChecker reports whether a dependency can serve traffic.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

// PlacesStatsSource exposes the counters of the places data layer.
type PlacesStatsSource interface {
	Stats() places.LayeredStats
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: recommendations, explanations, cache and stats
//   - handlers_places.go: nearby, trending, place detail, similar, open status
//   - handlers_route.go: route optimization
type Handler struct {
	recommender *recommend.Service
	optimizer   *route.Optimizer
	placesStats PlacesStatsSource
	checks      map[string]ReadinessChecker
	version     string
	startTime   time.Time
	now         func() time.Time
	logger      zerolog.Logger
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithReadinessCheck adds a named dependency to the readiness probe.
func WithReadinessCheck(name string, check ReadinessChecker) HandlerOption {
	return func(h *Handler) { h.checks[name] = check }
}

// WithPlacesStats includes data layer counters in the stats endpoint.
func WithPlacesStats(src PlacesStatsSource) HandlerOption {
	return func(h *Handler) { h.placesStats = src }
}

// WithVersion sets the version reported by the health endpoints.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) { h.version = version }
}

// WithHandlerClock overrides the clock used for open-status and route start times.
func WithHandlerClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// localTime returns explicit as given, or the handler clock's current time
// when explicit is nil. Either is converted into timezone when one is named;
// the current time otherwise falls back to the recommender's zone.
func (h *Handler) localTime(explicit *time.Time, timezone string) (time.Time, error) {
	if explicit != nil {
		if timezone == "" {
			return *explicit, nil
		}
		return h.recommender.Localize(*explicit, timezone)
	}
	return h.recommender.Localize(h.now(), timezone)
}

// NewHandler creates the API handler.
func NewHandler(recommender *recommend.Service, optimizer *route.Optimizer, logger zerolog.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		recommender: recommender,
		optimizer:   optimizer,
		checks:      make(map[string]ReadinessChecker),
		version:     "dev",
		startTime:   time.Now(),
		now:         time.Now,
		logger:      logger.With().Str("component", "api").Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
