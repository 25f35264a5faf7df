// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendation Metrics:
  - recommendation_requests_total{source}: source is live, cache or fallback
  - recommendation_duration_seconds{source}
  - recommendation_results
  - recommendation_filter_relaxations_total
  - recommendation_shown_history_size

Places Provider Metrics:
  - places_provider_fetches_total{provider, result}
  - places_provider_fetch_duration_seconds{provider}
  - places_provider_places_returned{provider}
  - places_provider_retries_total
  - places_radius_expansions_total

Cache Metrics:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}
  - cache_entries{cache_type}, cache_evictions_total{cache_type}

Route Metrics:
  - route_optimizations_total{feasible}
  - route_stops
  - route_optimization_duration_seconds

Circuit Breaker Metrics:
  - circuit_breaker_state{name}: 0 closed, 1 half-open, 2 open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

	start := time.Now()
	places, err := provider.FetchNearby(ctx, loc, radius, limit)
	metrics.RecordProviderFetch("overpass", time.Since(start), len(places), err)

# Alerting Example

	groups:
	  - name: sendero
	    rules:
	      - alert: PlacesProviderCircuitOpen
	        expr: circuit_breaker_state{name="places-upstream"} == 2
	        for: 5m
	      - alert: RecommendationFallbackRate
	        expr: rate(recommendation_requests_total{source="fallback"}[10m]) > 0.1
	        for: 10m
*/
package metrics
