// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package api

import (
	"net/http"

	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/models"
	"github.com/tomtom215/sendero/internal/places"
	"github.com/tomtom215/sendero/internal/recommend"
)

// RecommendationsData is the payload of POST /recommendations.
type RecommendationsData struct {
	Places       []models.Place `json:"places"`
	Relaxed      bool           `json:"relaxed"`
	RadiusMeters float64        `json:"radius_meters,omitempty"`
}

// StatsData is the payload of GET /recommendations/stats.
type StatsData struct {
	Recommendations recommend.Stats      `json:"recommendations"`
	Places          *places.LayeredStats `json:"places,omitempty"`
}

// Recommendations handles POST /api/v1/recommendations.
//
// @Summary Get personalized recommendations
// @Description Ranks places near the location for the profile. A missing profile uses the default profile.
// @Description When the places provider is unavailable the static fallback set is returned and metadata.fallback is set.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Location, profile and filters"
// @Success 200 {object} models.APIResponse{data=RecommendationsData} "Ranked places"
// @Failure 400 {object} models.APIResponse "Missing location or invalid input"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	res, ok := h.scoredRecommendations(w, r)
	if !ok {
		return
	}

	list := res.PlaceList()
	respondSuccess(w, RecommendationsData{
		Places:       list,
		Relaxed:      res.Relaxed,
		RadiusMeters: res.RadiusMeters,
	}, models.Metadata{
		QueryTimeMS: res.LatencyMS,
		Cached:      res.Cached,
		Fallback:    res.Fallback,
		Count:       intPtr(len(list)),
	})
}

// RecommendationsExplain handles POST /api/v1/recommendations/explain.
//
// @Summary Get recommendations with scores and explanations
// @Description Same ranking as /recommendations, with score, distance and a human-readable explanation per place.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Location, profile and filters"
// @Success 200 {object} models.APIResponse{data=recommend.Result} "Scored places"
// @Failure 400 {object} models.APIResponse "Missing location or invalid input"
// @Router /recommendations/explain [post]
func (h *Handler) RecommendationsExplain(w http.ResponseWriter, r *http.Request) {
	res, ok := h.scoredRecommendations(w, r)
	if !ok {
		return
	}

	respondSuccess(w, res, models.Metadata{
		QueryTimeMS: res.LatencyMS,
		Cached:      res.Cached,
		Fallback:    res.Fallback,
		Count:       intPtr(len(res.Places)),
	})
}

// scoredRecommendations decodes, validates and runs a recommendation
// request. It writes the error response itself and reports false on failure.
func (h *Handler) scoredRecommendations(w http.ResponseWriter, r *http.Request) (*recommend.Result, bool) {
	var req models.RecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return nil, false
	}
	if req.Location == nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeLocationRequired, "A location is required", nil)
		return nil, false
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return nil, false
	}

	res, err := h.recommender.GetScoredRecommendations(r.Context(), recommend.Request{
		Location:  req.Location,
		Profile:   req.Profile,
		Filters:   req.Filters,
		Timezone:  req.Timezone,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return nil, false
	}
	return res, true
}

// ClearRecommendationCache handles DELETE /api/v1/recommendations/cache.
//
// @Summary Clear the recommendation cache
// @Description Drops all cached rankings. The recently-shown history is kept.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse "Cache cleared"
// @Router /recommendations/cache [delete]
func (h *Handler) ClearRecommendationCache(w http.ResponseWriter, r *http.Request) {
	h.recommender.ClearCache()
	logging.Ctx(r.Context()).Info().Msg("Recommendation cache cleared via API")

	respondSuccess(w, map[string]bool{"cleared": true}, models.Metadata{})
}

// RecommendationStats handles GET /api/v1/recommendations/stats.
//
// @Summary Get recommendation and data layer statistics
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=StatsData} "Counters"
// @Router /recommendations/stats [get]
func (h *Handler) RecommendationStats(w http.ResponseWriter, r *http.Request) {
	data := StatsData{Recommendations: h.recommender.Stats()}
	if h.placesStats != nil {
		ps := h.placesStats.Stats()
		data.Places = &ps
	}
	respondSuccess(w, data, models.Metadata{})
}
