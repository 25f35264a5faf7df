// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/sendero/internal/middleware"
)

// compressionLevel is the gzip level for chi's Compress middleware.
const compressionLevel = 5

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	swaggerEnabled bool
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware, swaggerEnabled bool) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  mw,
		swaggerEnabled: swaggerEnabled,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(router.chiMiddleware.RealIP())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chimiddleware.Compress(compressionLevel))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Recommendation Endpoints
	// ========================
	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Post("/", router.handler.Recommendations)
		r.Post("/explain", router.handler.RecommendationsExplain)
		r.Delete("/cache", router.handler.ClearRecommendationCache)
		r.Get("/stats", router.handler.RecommendationStats)
	})

	// ========================
	// Place Endpoints
	// ========================
	r.Route("/api/v1/places", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/nearby", router.handler.NearbyPlaces)
		r.Get("/trending", router.handler.TrendingPlaces)
		r.Get("/{id}", router.handler.PlaceByID)
		r.Get("/{id}/similar", router.handler.SimilarPlaces)
		r.Get("/{id}/open", router.handler.PlaceOpenStatus)
	})

	// ========================
	// Route Endpoints
	// ========================
	r.Route("/api/v1/routes", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Post("/optimize", router.handler.OptimizeRoute)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	if router.swaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	return r
}
