// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package route sequences a set of chosen places into a visiting itinerary.

The optimizer builds an initial order with the nearest-neighbor heuristic
from the start location, then applies 2-opt segment reversals until a full
pass finds no strictly shorter path. The path is open: it starts at the start
location and does not return to it.

A timing pass then walks the order at a constant average speed (30 km/h by
default), rounding each leg up to whole minutes, and adds each place's
average visit duration (60 minutes when unset):

	opt, _ := route.NewOptimizer(route.DefaultConfig(), logger)
	r, feasibility, err := opt.Plan(places, start, time.Now())

IsRouteFeasible reports stops whose arrival falls outside their opening
hours. Infeasible routes are still returned; conflicts are data for the
caller.

All functions are pure and safe for concurrent use.
*/
package route
