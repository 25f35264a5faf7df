// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package models

import "time"

// RoutePlace is a stop of an optimized route.
type RoutePlace struct {
	Place         Place     `json:"place"`
	Order         int       `json:"order"`
	ArrivalTime   time.Time `json:"arrival_time"`
	DepartureTime time.Time `json:"departure_time"`
	// TravelMeters is the leg distance from the previous stop, or from the start for the first stop.
	TravelMeters float64 `json:"travel_meters"`
}

// Route is an ordered visiting plan. Total duration counts travel and visit minutes.
type Route struct {
	Places               []RoutePlace `json:"places"`
	TotalDistanceMeters  float64      `json:"total_distance_meters"`
	TotalDurationMinutes int          `json:"total_duration_minutes"`
	StartTime            time.Time    `json:"start_time"`
}

// Empty reports whether the route has no stops.
func (r *Route) Empty() bool {
	return r == nil || len(r.Places) == 0
}

// Feasibility is the outcome of checking a route against opening hours.
// Conflicts are human-readable, one per violating stop.
type Feasibility struct {
	Feasible  bool     `json:"feasible"`
	Conflicts []string `json:"conflicts"`
}
