// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/models"
	"github.com/tomtom215/sendero/internal/route"
)

// OptimizeRoute handles POST /api/v1/routes/optimize.
//
// @Summary Optimize a visiting route
// @Description Orders the stops by nearest neighbor and 2-opt from the start location and schedules them at walking speed.
// @Description Stops are given as place ids, inline places, or both. Opening-hour conflicts are reported in feasibility, not as errors.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body models.RouteRequest true "Stops, start location, optional start time and timezone"
// @Success 200 {object} models.APIResponse{data=models.RouteResponse} "Optimized route"
// @Failure 400 {object} models.APIResponse "Invalid input"
// @Failure 404 {object} models.APIResponse "Unknown place id"
// @Router /routes/optimize [post]
func (h *Handler) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	var req models.RouteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if req.Start == nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeLocationRequired, "A start location is required", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	stops, err := h.resolveStops(r.Context(), &req)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	startTime, err := h.localTime(req.StartTime, req.Timezone)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	planned, feasibility, err := h.optimizer.Plan(stops, *req.Start, startTime)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, models.RouteResponse{
		Route:         planned,
		Feasibility:   feasibility,
		TotalDistance: geo.FormatDistance(planned.TotalDistanceMeters),
		TotalDuration: route.FormatDuration(float64(planned.TotalDurationMinutes)),
	}, models.Metadata{Count: intPtr(len(planned.Places))})
}

// resolveStops loads the places named by id and appends the inline places.
// A place listed twice is visited once.
func (h *Handler) resolveStops(ctx context.Context, req *models.RouteRequest) ([]models.Place, error) {
	stops := make([]models.Place, 0, len(req.PlaceIDs)+len(req.Places))
	seen := make(map[string]struct{}, cap(stops))

	for _, id := range req.PlaceIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		p, err := h.recommender.Place(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve route stop: %w", err)
		}
		seen[id] = struct{}{}
		stops = append(stops, *p)
	}

	for _, p := range req.Places {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		stops = append(stops, p)
	}
	return stops, nil
}
