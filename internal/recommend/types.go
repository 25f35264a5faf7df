// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/sendero/internal/models"
)

// ScoredPlace pairs a candidate place with its relevance score.
type ScoredPlace struct {
	// Place is the candidate. It is never modified.
	Place models.Place `json:"place"`

	// Score is the relevance score. The scorer produces values in [0, 100];
	// rerankers may scale it beyond 100.
	Score float64 `json:"score"`

	// DistanceMeters is the distance from the request location.
	DistanceMeters float64 `json:"distance_meters"`

	// Explanation lists why the place was recommended. Nil when explanations are disabled.
	Explanation *Explanation `json:"explanation,omitempty"`
}

// Explanation is a human-readable account of a score.
type Explanation struct {
	PrimaryReason    string   `json:"primary_reason"`
	SecondaryReasons []string `json:"secondary_reasons"`
	Score            float64  `json:"score"`
	MatchPercentage  int      `json:"match_percentage"`
}

// SubScores is the breakdown of a score before weighting. Every field is in [0, 1]
// except SafetyAdjustment, which is in points.
type SubScores struct {
	Interests        float64 `json:"interests"`
	Rating           float64 `json:"rating"`
	Popularity       float64 `json:"popularity"`
	Distance         float64 `json:"distance"`
	Budget           float64 `json:"budget"`
	ActivityLevel    float64 `json:"activity_level"`
	TravelStyle      float64 `json:"travel_style"`
	Dietary          float64 `json:"dietary"`
	TimePreference   float64 `json:"time_preference"`
	SafetyAdjustment float64 `json:"safety_adjustment"`
}

// Reranker modifies a ranked list for diversity or other objectives.
// Implementations must not modify the places, only reorder, drop or rescore
// entries, and must return a new slice.
type Reranker interface {
	// Name returns the reranker name for logging.
	Name() string

	// Rerank reorders items. k is the result-count target.
	Rerank(ctx context.Context, items []ScoredPlace, k int) []ScoredPlace
}

// PlacesProvider supplies candidate places near a location.
type PlacesProvider interface {
	// FetchNearby returns verified places within radiusMeters of location,
	// at most limit of them. Zero results is not an error.
	FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error)

	// FetchByID returns one place or an error wrapping a not-found sentinel.
	FetchByID(ctx context.Context, id string) (*models.Place, error)
}

// FallbackSource supplies the static place list used when the provider is unavailable.
type FallbackSource interface {
	All() []models.Place
}

// Request is one recommendation request.
type Request struct {
	Location *models.Location
	// Profile may be nil, in which case models.DefaultProfile is used.
	Profile *models.UserProfile
	Filters *models.Filters
	// Timezone is the traveler's IANA zone. Empty selects Config.Timezone.
	Timezone string
	// RequestID is propagated into logs.
	RequestID string
}

// Result is the outcome of a recommendation request.
type Result struct {
	Places []ScoredPlace `json:"places"`

	// Cached is set when the ranking came from the recommendation cache.
	Cached bool `json:"cached"`

	// Fallback is set when the static fallback source was used.
	Fallback bool `json:"fallback"`

	// Relaxed is set when request filters were dropped to reach the minimum count.
	Relaxed bool `json:"relaxed"`

	// RadiusMeters is the search radius of the last provider query.
	RadiusMeters float64 `json:"radius_meters"`

	// Candidates is the number of places returned by the provider.
	Candidates int `json:"candidates"`

	// LatencyMS is the total latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`
}

// PlaceList returns the ranked places without scores.
func (r *Result) PlaceList() []models.Place {
	out := make([]models.Place, len(r.Places))
	for i := range r.Places {
		out[i] = r.Places[i].Place
	}
	return out
}

// Stats contains recommendation service counters for observability.
type Stats struct {
	CacheEntries int   `json:"cache_entries"`
	HistorySize  int   `json:"history_size"`
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	Fallbacks    int64 `json:"fallbacks"`
	ErrorCount   int64 `json:"error_count"`
}

type requestTimeKey struct{}

// WithRequestTime stores the wall-clock time a request is evaluated at.
// Rerankers read it through RequestTime so that one request sees one time.
func WithRequestTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// RequestTime returns the time stored by WithRequestTime, or time.Now.
func RequestTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}
