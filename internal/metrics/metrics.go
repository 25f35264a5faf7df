// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Recommendation requests, cache efficiency and fallbacks
// - Places provider fetches and radius expansions
// - Route optimization
// - Circuit breaker state

// Recommendation sources.
const (
	SourceLive     = "live"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by result source",
		},
		[]string{"source"}, // "live", "cache", "fallback"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Recommendation latency in seconds by result source",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of places returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 15, 20, 50},
		},
	)

	RecommendationFilterRelaxations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_filter_relaxations_total",
			Help: "Total number of times request filters were dropped to reach the minimum result count",
		},
	)

	ShownHistorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommendation_shown_history_size",
			Help: "Number of place ids in the shown-history set",
		},
	)

	// Places Provider Metrics
	ProviderFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "places_provider_fetch_duration_seconds",
			Help:    "Duration of places provider fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	ProviderFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "places_provider_fetches_total",
			Help: "Total number of places provider fetches",
		},
		[]string{"provider", "result"}, // result: "success", "error"
	)

	ProviderPlacesReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "places_provider_places_returned",
			Help:    "Number of places returned per provider fetch",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"provider"},
	)

	ProviderRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "places_provider_retries_total",
			Help: "Total number of places provider retries",
		},
	)

	RadiusExpansions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "places_radius_expansions_total",
			Help: "Total number of search radius expansions",
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "recommendation", "nearby", "store"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Route Metrics
	RouteOptimizations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_optimizations_total",
			Help: "Total number of route optimizations by feasibility",
		},
		[]string{"feasible"},
	)

	RouteStops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_stops",
			Help:    "Number of stops per optimized route",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 12, 16, 20, 25},
		},
	)

	RouteOptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_optimization_duration_seconds",
			Help:    "Route optimization latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Supervisor Metrics
	SupervisorServiceRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supervisor_service_restarts_total",
			Help: "Total number of supervised service restarts",
		},
		[]string{"service"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation request served from source.
func RecordRecommendation(source string, duration time.Duration, results int) {
	RecommendationRequests.WithLabelValues(source).Inc()
	RecommendationDuration.WithLabelValues(source).Observe(duration.Seconds())
	RecommendationResults.Observe(float64(results))
}

// RecordProviderFetch records a places provider fetch.
func RecordProviderFetch(provider string, duration time.Duration, places int, err error) {
	ProviderFetchDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if err != nil {
		ProviderFetches.WithLabelValues(provider, "error").Inc()
		return
	}
	ProviderFetches.WithLabelValues(provider, "success").Inc()
	ProviderPlacesReturned.WithLabelValues(provider).Observe(float64(places))
}

// RecordCacheLookup records a hit or miss for cacheType.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordCacheEvictions records n expired entries removed from cacheType.
func RecordCacheEvictions(cacheType string, n int) {
	if n > 0 {
		CacheEvictions.WithLabelValues(cacheType).Add(float64(n))
	}
}

// RecordRouteOptimization records an optimized route.
func RecordRouteOptimization(stops int, feasible bool, duration time.Duration) {
	RouteOptimizations.WithLabelValues(strconv.FormatBool(feasible)).Inc()
	RouteStops.Observe(float64(stops))
	RouteOptimizationDuration.Observe(duration.Seconds())
}
