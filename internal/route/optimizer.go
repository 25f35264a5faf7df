// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package route

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/metrics"
	"github.com/tomtom215/sendero/internal/models"
)

// improvementEpsilon is the minimum distance gain, in meters, for a 2-opt move.
const improvementEpsilon = 1e-6

// Optimizer sequences places into a visiting route.
// It holds no mutable state and is safe for concurrent use.
type Optimizer struct {
	config *Config
	logger zerolog.Logger
}

// NewOptimizer creates an optimizer. A nil cfg uses DefaultConfig.
func NewOptimizer(cfg *Config, logger zerolog.Logger) (*Optimizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid route config: %w", err)
	}
	return &Optimizer{
		config: cfg,
		logger: logger.With().Str("component", "route_optimizer").Logger(),
	}, nil
}

// Config returns the optimizer configuration.
func (o *Optimizer) Config() Config {
	return *o.config
}

// Plan optimizes the route and checks it against opening hours.
func (o *Optimizer) Plan(places []models.Place, start models.Location, startTime time.Time) (*models.Route, models.Feasibility, error) {
	began := time.Now()

	if !geo.ValidCoordinate(start.Latitude, start.Longitude) {
		return nil, models.Feasibility{}, ErrInvalidStart
	}
	if len(places) > o.config.MaxStops {
		return nil, models.Feasibility{}, fmt.Errorf("%w: %d places, at most %d", ErrTooManyStops, len(places), o.config.MaxStops)
	}

	r := o.Optimize(places, start, startTime)
	feasibility := IsRouteFeasible(r)

	metrics.RecordRouteOptimization(len(r.Places), feasibility.Feasible, time.Since(began))
	o.logger.Debug().
		Int("stops", len(r.Places)).
		Float64("distance_m", r.TotalDistanceMeters).
		Int("duration_min", r.TotalDurationMinutes).
		Bool("feasible", feasibility.Feasible).
		Msg("Route optimized")

	return r, feasibility, nil
}

// Optimize orders places by nearest neighbor from start, improves the order
// with 2-opt and computes arrival and departure times beginning at startTime.
// Times keep the location of startTime.
func (o *Optimizer) Optimize(places []models.Place, start models.Location, startTime time.Time) *models.Route {
	switch len(places) {
	case 0:
		return &models.Route{Places: []models.RoutePlace{}, StartTime: startTime}
	case 1:
		return o.singleStop(places[0], startTime)
	}

	order := NearestNeighbor(places, start)
	order = o.twoOpt(order, start)
	return o.schedule(order, start, startTime)
}

func (o *Optimizer) singleStop(p models.Place, startTime time.Time) *models.Route {
	visit := o.visitMinutes(&p)
	return &models.Route{
		Places: []models.RoutePlace{{
			Place:         p,
			Order:         0,
			ArrivalTime:   startTime,
			DepartureTime: startTime.Add(time.Duration(visit) * time.Minute),
		}},
		TotalDurationMinutes: visit,
		StartTime:            startTime,
	}
}

// NearestNeighbor returns places in greedy nearest-first order from start.
// Ties keep input order. The input is not modified.
func NearestNeighbor(places []models.Place, start models.Location) []models.Place {
	unvisited := append([]models.Place(nil), places...)
	order := make([]models.Place, 0, len(places))
	current := start

	for len(unvisited) > 0 {
		nearest := 0
		best := math.Inf(1)
		for i := range unvisited {
			if d := geo.PlaceDistance(current, &unvisited[i]); d < best {
				best = d
				nearest = i
			}
		}
		next := unvisited[nearest]
		order = append(order, next)
		current = next.Location()
		unvisited = append(unvisited[:nearest], unvisited[nearest+1:]...)
	}
	return order
}

// PathDistance returns the open-path length from start through every place
// in order, without returning to start.
func PathDistance(order []models.Place, start models.Location) float64 {
	total := 0.0
	current := start
	for i := range order {
		total += geo.PlaceDistance(current, &order[i])
		current = order[i].Location()
	}
	return total
}

// twoOpt applies segment reversals that shorten the path. The start location
// is a fixed first node, so only the visiting order changes. Reversing
// order[i+1..j] replaces the edges (i, i+1) and (j, j+1) with (i, j) and
// (i+1, j+1); the trailing edge does not exist when j is the last stop.
func (o *Optimizer) twoOpt(order []models.Place, start models.Location) []models.Place {
	route := append([]models.Place(nil), order...)
	n := len(route)

	// node(k) is the location of path node k, where node(-1) is start.
	node := func(k int) models.Location {
		if k < 0 {
			return start
		}
		return route[k].Location()
	}

	passes := 0
	for improved := true; improved; {
		improved = false
		passes++

		for i := -1; i < n-2; i++ {
			for j := i + 2; j < n; j++ {
				before := geo.DistanceMeters(node(i), node(i+1))
				after := geo.DistanceMeters(node(i), node(j))
				if j+1 < n {
					before += geo.DistanceMeters(node(j), node(j+1))
					after += geo.DistanceMeters(node(i+1), node(j+1))
				}
				if after < before-improvementEpsilon {
					reverse(route[i+1 : j+1])
					improved = true
				}
			}
		}

		if o.config.MaxImprovementPasses > 0 && passes >= o.config.MaxImprovementPasses {
			break
		}
	}
	return route
}

func reverse(s []models.Place) {
	for a, b := 0, len(s)-1; a < b; a, b = a+1, b-1 {
		s[a], s[b] = s[b], s[a]
	}
}

// schedule walks the order accumulating travel and visit time.
func (o *Optimizer) schedule(order []models.Place, start models.Location, startTime time.Time) *models.Route {
	r := &models.Route{
		Places:    make([]models.RoutePlace, 0, len(order)),
		StartTime: startTime,
	}

	clock := startTime
	current := start
	for i := range order {
		p := order[i]
		distance := geo.PlaceDistance(current, &p)
		travel := o.TravelMinutes(distance)
		visit := o.visitMinutes(&p)

		clock = clock.Add(time.Duration(travel) * time.Minute)
		arrival := clock
		clock = clock.Add(time.Duration(visit) * time.Minute)

		r.Places = append(r.Places, models.RoutePlace{
			Place:         p,
			Order:         i,
			ArrivalTime:   arrival,
			DepartureTime: clock,
			TravelMeters:  distance,
		})
		r.TotalDistanceMeters += distance
		r.TotalDurationMinutes += travel + visit
		current = p.Location()
	}
	return r
}

// TravelMinutes converts a distance to whole minutes at the average speed, rounding up.
func (o *Optimizer) TravelMinutes(distanceMeters float64) int {
	return int(math.Ceil(distanceMeters / 1000 / o.config.AverageSpeedKmh * 60))
}

func (o *Optimizer) visitMinutes(p *models.Place) int {
	if p.AverageVisitDuration > 0 {
		return p.AverageVisitDuration
	}
	return o.config.DefaultVisitMinutes
}
