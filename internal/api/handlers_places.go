// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/sendero/internal/models"
	"github.com/tomtom215/sendero/internal/recommend"
)

// PlacesData is the payload of the place list endpoints.
type PlacesData struct {
	Places []models.Place `json:"places"`
}

// NearbyPlaces handles GET /api/v1/places/nearby.
//
// @Summary List places near a location
// @Description Verified places within the radius, nearest first. The radius is capped by the search configuration.
// @Tags Places
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in meters (default from configuration)"
// @Param limit query int false "Maximum places (1-100, default 20)"
// @Success 200 {object} models.APIResponse{data=PlacesData} "Nearby places"
// @Failure 400 {object} models.APIResponse "Missing or invalid parameters"
// @Router /places/nearby [get]
func (h *Handler) NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	loc, ok := requireLocationQuery(w, r)
	if !ok {
		return
	}

	radius, err := getFloatParam(r, "radius", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	limit, err := getIntParam(r, "limit", defaultListLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	query := NearbyQuery{Latitude: loc.Latitude, Longitude: loc.Longitude, Radius: radius, Limit: limit}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	list, err := h.recommender.Nearby(r.Context(), *loc, query.Radius, query.Limit)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, PlacesData{Places: list}, models.Metadata{Count: intPtr(len(list))})
}

// TrendingPlaces handles GET /api/v1/places/trending.
//
// @Summary List trending places near a location
// @Description Well-rated places ranked by rating and review volume. Falls back to the static dataset when nothing is found.
// @Tags Places
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param limit query int false "Maximum places (default from configuration)"
// @Success 200 {object} models.APIResponse{data=PlacesData} "Trending places"
// @Failure 400 {object} models.APIResponse "Missing or invalid parameters"
// @Router /places/trending [get]
func (h *Handler) TrendingPlaces(w http.ResponseWriter, r *http.Request) {
	loc, ok := requireLocationQuery(w, r)
	if !ok {
		return
	}

	limit, err := getIntParam(r, "limit", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	query := TrendingQuery{Latitude: loc.Latitude, Longitude: loc.Longitude, Limit: limit}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	list := h.recommender.Trending(r.Context(), *loc, query.Limit)
	respondSuccess(w, PlacesData{Places: list}, models.Metadata{Count: intPtr(len(list))})
}

// PlaceByID handles GET /api/v1/places/{id}.
//
// @Summary Get a place
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} models.APIResponse{data=models.Place} "Place"
// @Failure 404 {object} models.APIResponse "Unknown place"
// @Router /places/{id} [get]
func (h *Handler) PlaceByID(w http.ResponseWriter, r *http.Request) {
	place, err := h.recommender.Place(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, place, models.Metadata{})
}

// SimilarPlaces handles GET /api/v1/places/{id}/similar.
//
// @Summary List places similar to a place
// @Description Same category and price level near the reference place, best rated first.
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Param limit query int false "Maximum places (default from configuration)"
// @Success 200 {object} models.APIResponse{data=PlacesData} "Similar places"
// @Failure 404 {object} models.APIResponse "Unknown place"
// @Router /places/{id}/similar [get]
func (h *Handler) SimilarPlaces(w http.ResponseWriter, r *http.Request) {
	limit, err := getIntParam(r, "limit", 0)
	if err != nil || limit < 0 || limit > maxListLimit {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "limit must be an integer between 0 and 100", nil)
		return
	}

	list, err := h.recommender.SimilarByID(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, PlacesData{Places: list}, models.Metadata{Count: intPtr(len(list))})
}

// PlaceOpenStatus handles GET /api/v1/places/{id}/open.
//
// @Summary Check whether a place is open
// @Description Places without opening hours are reported open. The weekday and time are taken from the timestamp's own offset,
// @Description or from tz when given. Without at, the current time in tz or the configured zone is used.
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Param at query string false "RFC3339 timestamp (default now)"
// @Param tz query string false "IANA timezone, e.g. Europe/Madrid"
// @Success 200 {object} models.APIResponse{data=models.OpenStatus} "Open status"
// @Failure 400 {object} models.APIResponse "Invalid timestamp or timezone"
// @Failure 404 {object} models.APIResponse "Unknown place"
// @Router /places/{id}/open [get]
func (h *Handler) PlaceOpenStatus(w http.ResponseWriter, r *http.Request) {
	var explicit *time.Time
	if r.URL.Query().Get("at") != "" {
		parsed, err := getTimeParam(r, "at", time.Time{})
		if err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
			return
		}
		explicit = &parsed
	}
	at, err := h.localTime(explicit, r.URL.Query().Get("tz"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	place, err := h.recommender.Place(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, models.OpenStatus{
		PlaceID: place.ID,
		At:      at,
		Open:    recommend.IsPlaceOpen(place, at),
	}, models.Metadata{})
}

// requireLocationQuery reads lat/lon, writing LOCATION_REQUIRED when absent.
func requireLocationQuery(w http.ResponseWriter, r *http.Request) (*models.Location, bool) {
	loc, err := parseLocationQuery(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return nil, false
	}
	if loc == nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeLocationRequired, "lat and lon query parameters are required", nil)
		return nil, false
	}
	return loc, true
}
