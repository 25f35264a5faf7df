// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package route

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/models"
)

var (
	start      = models.Location{Latitude: 40.4168, Longitude: -3.7038}
	mondayNine = time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
)

func newTestOptimizer(t *testing.T) *Optimizer {
	t.Helper()
	opt, err := NewOptimizer(nil, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}
	return opt
}

func stop(id string, northM, eastM float64) models.Place {
	loc := geo.Offset(start, northM, eastM)
	return models.Place{
		ID:        id,
		Name:      id,
		Category:  models.CategoryMonument,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
}

func ids(r *models.Route) []string {
	out := make([]string, len(r.Places))
	for i := range r.Places {
		out[i] = r.Places[i].Place.ID
	}
	return out
}

func TestNewOptimizer_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.AverageSpeedKmh = 0
	if _, err := NewOptimizer(cfg, logging.NewTestLogger(io.Discard)); err == nil {
		t.Fatal("expected error for zero speed")
	}
}

func TestOptimize_NoPlaces(t *testing.T) {
	t.Parallel()

	r := newTestOptimizer(t).Optimize(nil, start, mondayNine)
	if !r.Empty() {
		t.Fatalf("expected empty route, got %v", ids(r))
	}
	if r.Places == nil {
		t.Error("Places should be an empty slice, not nil")
	}
	if r.TotalDistanceMeters != 0 || r.TotalDurationMinutes != 0 {
		t.Errorf("totals = %v m, %d min, want zero", r.TotalDistanceMeters, r.TotalDurationMinutes)
	}
}

func TestOptimize_SingleStop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		visit int
		want  int
	}{
		{"default visit", 0, 60},
		{"explicit visit", 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := stop("far", 5000, 5000)
			p.AverageVisitDuration = tt.visit

			r := newTestOptimizer(t).Optimize([]models.Place{p}, start, mondayNine)
			if len(r.Places) != 1 {
				t.Fatalf("got %d stops, want 1", len(r.Places))
			}
			if r.TotalDistanceMeters != 0 {
				t.Errorf("TotalDistanceMeters = %v, want 0", r.TotalDistanceMeters)
			}
			if r.TotalDurationMinutes != tt.want {
				t.Errorf("TotalDurationMinutes = %d, want %d", r.TotalDurationMinutes, tt.want)
			}
			got := r.Places[0]
			if !got.ArrivalTime.Equal(mondayNine) {
				t.Errorf("ArrivalTime = %v, want %v", got.ArrivalTime, mondayNine)
			}
			if d := got.DepartureTime.Sub(got.ArrivalTime); d != time.Duration(tt.want)*time.Minute {
				t.Errorf("visit = %v, want %d min", d, tt.want)
			}
		})
	}
}

func TestOptimize_Timing(t *testing.T) {
	t.Parallel()

	near := stop("near", 1400, 0)
	near.AverageVisitDuration = 30
	far := stop("far", 2800, 0)

	r := newTestOptimizer(t).Optimize([]models.Place{far, near}, start, mondayNine)

	if got := fmt.Sprint(ids(r)); got != "[near far]" {
		t.Fatalf("order = %s, want [near far]", got)
	}

	want := []struct {
		arrival, departure string
	}{
		{"09:03", "09:33"},
		{"09:36", "10:36"},
	}
	for i, w := range want {
		rp := r.Places[i]
		if rp.Order != i {
			t.Errorf("stop %d Order = %d", i, rp.Order)
		}
		if got := models.FormatClock(rp.ArrivalTime); got != w.arrival {
			t.Errorf("stop %d arrival = %s, want %s", i, got, w.arrival)
		}
		if got := models.FormatClock(rp.DepartureTime); got != w.departure {
			t.Errorf("stop %d departure = %s, want %s", i, got, w.departure)
		}
	}

	if r.TotalDurationMinutes != 96 {
		t.Errorf("TotalDurationMinutes = %d, want 96", r.TotalDurationMinutes)
	}
	if math.Abs(r.TotalDistanceMeters-2800) > 1 {
		t.Errorf("TotalDistanceMeters = %v, want ~2800", r.TotalDistanceMeters)
	}
}

func TestTravelMinutes(t *testing.T) {
	t.Parallel()

	opt := newTestOptimizer(t)
	tests := []struct {
		meters float64
		want   int
	}{
		{0, 0},
		{400, 1},
		{2600, 6},
		{12345, 25},
	}

	for _, tt := range tests {
		if got := opt.TravelMinutes(tt.meters); got != tt.want {
			t.Errorf("TravelMinutes(%v) = %d, want %d", tt.meters, got, tt.want)
		}
	}
}

func TestNearestNeighbor(t *testing.T) {
	t.Parallel()

	places := []models.Place{
		stop("c", 3000, 0),
		stop("a", 1000, 0),
		stop("b", 2000, 0),
	}
	order := NearestNeighbor(places, start)

	got := make([]string, len(order))
	for i := range order {
		got[i] = order[i].ID
	}
	if fmt.Sprint(got) != "[a b c]" {
		t.Errorf("order = %v, want [a b c]", got)
	}
	if places[0].ID != "c" {
		t.Error("NearestNeighbor modified its input")
	}
}

func TestTwoOpt_RemovesCrossing(t *testing.T) {
	t.Parallel()

	// start -> a -> b -> c -> d crosses itself; every uncrossed order is 4 km.
	order := []models.Place{
		stop("a", 0, 1000),
		stop("b", 1000, 2000),
		stop("c", 0, 2000),
		stop("d", 1000, 1000),
	}

	before := PathDistance(order, start)
	improved := newTestOptimizer(t).twoOpt(order, start)
	after := PathDistance(improved, start)

	if after >= before {
		t.Fatalf("2-opt did not improve: %v -> %v", before, after)
	}
	if math.Abs(after-4000) > 1 {
		t.Errorf("distance after 2-opt = %v, want ~4000", after)
	}
	if improved[0].ID != "a" {
		t.Errorf("first stop = %s, want a", improved[0].ID)
	}
}

func TestOptimize_NeverWorseThanNearestNeighbor(t *testing.T) {
	t.Parallel()

	opt := newTestOptimizer(t)
	for seed := uint64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7))
		n := 2 + rng.IntN(12)
		places := make([]models.Place, n)
		for i := range places {
			places[i] = stop(fmt.Sprintf("p%d", i), rng.Float64()*8000-4000, rng.Float64()*8000-4000)
		}

		greedy := PathDistance(NearestNeighbor(places, start), start)
		r := opt.Optimize(places, start, mondayNine)

		if r.TotalDistanceMeters > greedy+1e-6 {
			t.Errorf("seed %d: optimized %v > nearest neighbor %v", seed, r.TotalDistanceMeters, greedy)
		}

		got := ids(r)
		sort.Strings(got)
		want := make([]string, n)
		for i := range places {
			want[i] = places[i].ID
		}
		sort.Strings(want)
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("seed %d: route is not a permutation of the input: %v", seed, got)
		}
	}
}

func TestOptimize_BoundedPasses(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxImprovementPasses = 1
	opt, err := NewOptimizer(cfg, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}

	places := []models.Place{stop("a", 0, 1000), stop("b", 1000, 2000), stop("c", 0, 2000), stop("d", 1000, 1000)}
	r := opt.Optimize(places, start, mondayNine)
	if len(r.Places) != 4 {
		t.Fatalf("got %d stops, want 4", len(r.Places))
	}
}

func TestPlan(t *testing.T) {
	t.Parallel()

	opt := newTestOptimizer(t)

	t.Run("invalid start", func(t *testing.T) {
		t.Parallel()
		_, _, err := opt.Plan(nil, models.Location{Latitude: 91}, mondayNine)
		if !errors.Is(err, ErrInvalidStart) {
			t.Errorf("error = %v, want ErrInvalidStart", err)
		}
	})

	t.Run("too many stops", func(t *testing.T) {
		t.Parallel()
		places := make([]models.Place, opt.Config().MaxStops+1)
		for i := range places {
			places[i] = stop(fmt.Sprintf("p%d", i), float64(i)*100, 0)
		}
		_, _, err := opt.Plan(places, start, mondayNine)
		if !errors.Is(err, ErrTooManyStops) {
			t.Errorf("error = %v, want ErrTooManyStops", err)
		}
	})

	t.Run("feasibility reported", func(t *testing.T) {
		t.Parallel()
		museum := stop("museum", 1400, 0)
		museum.OpeningHours = models.OpeningHours{"monday": {Open: "10:00", Close: "18:00"}}

		r, feasibility, err := opt.Plan([]models.Place{museum}, start, mondayNine)
		if err != nil {
			t.Fatalf("Plan() error = %v", err)
		}
		if len(r.Places) != 1 {
			t.Fatalf("got %d stops, want 1", len(r.Places))
		}
		if feasibility.Feasible {
			t.Error("arrival at 09:00 before a 10:00 opening should be infeasible")
		}
	})
}
