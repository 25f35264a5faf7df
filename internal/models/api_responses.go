// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package models

import (
	"time"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": {"places": [...]},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 12}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
//
// Cached is set when recommendations were served from the recommendation cache,
// Fallback when the static fallback dataset was used instead of live places.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Fallback    bool      `json:"fallback,omitempty"`
	Count       *int      `json:"count,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Codes in use:
//   - BAD_REQUEST: malformed body or query parameter
//   - VALIDATION_ERROR: well-formed input that fails validation
//   - LOCATION_REQUIRED: no location was supplied for a location-bound operation
//   - NOT_FOUND: unknown place id
//   - TOO_MANY_REQUESTS: rate limit exceeded
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendationRequest is the body of POST /api/v1/recommendations.
// A nil Profile selects DefaultProfile. Timezone is the traveler's IANA zone
// (e.g. "America/Bogota"); open-now and time-of-day scoring use it.
type RecommendationRequest struct {
	Location *Location    `json:"location" validate:"required"`
	Profile  *UserProfile `json:"profile,omitempty"`
	Filters  *Filters     `json:"filters,omitempty"`
	Timezone string       `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// RouteRequest is the body of POST /api/v1/routes/optimize. Stops may be
// given as ids resolved through the places provider, inline, or both.
type RouteRequest struct {
	PlaceIDs  []string   `json:"place_ids,omitempty" validate:"omitempty,max=25,dive,required"`
	Places    []Place    `json:"places,omitempty" validate:"omitempty,max=25,dive"`
	Start     *Location  `json:"start" validate:"required"`
	StartTime *time.Time `json:"start_time,omitempty"`
	// Timezone converts StartTime, or the current time when StartTime is
	// absent, into the traveler's IANA zone.
	Timezone string `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// RouteResponse pairs an optimized route with its feasibility report and
// human-readable totals.
type RouteResponse struct {
	Route         *Route      `json:"route"`
	Feasibility   Feasibility `json:"feasibility"`
	TotalDistance string      `json:"total_distance"`
	TotalDuration string      `json:"total_duration"`
}

// OpenStatus is returned by GET /api/v1/places/{id}/open.
type OpenStatus struct {
	PlaceID string    `json:"place_id"`
	At      time.Time `json:"at"`
	Open    bool      `json:"open"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Uptime  float64           `json:"uptime_seconds"`
	Checks  map[string]string `json:"checks,omitempty"`
}
