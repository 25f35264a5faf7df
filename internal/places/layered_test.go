// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/models"
)

func testNearbyConfig() NearbyCacheConfig {
	return NearbyCacheConfig{Capacity: 16, TTL: time.Minute, ReuseDistance: 1000}
}

func newTestLayered(upstream Provider, clock *fakeClock, opts ...LayeredOption) *Layered {
	opts = append(opts, WithLayeredClock(clock.Now))
	return NewLayered("test", upstream, testNearbyConfig(), logging.NewTestLogger(io.Discard), opts...)
}

func TestLayered_MemoryReuse(t *testing.T) {
	t.Parallel()

	upstream := newCountingProvider(fixturePlaces())
	l := newTestLayered(upstream, newFakeClock())
	ctx := context.Background()

	steps := []struct {
		name      string
		location  models.Location
		radius    float64
		wantCalls int
		want      string
	}{
		{"first request", sol, 2000, 1, "[p0 p1 p2 p3 p4]"},
		{"covered nearby request", geo.Offset(sol, 310, 0), 1000, 1, "[p1 p0 p2 p3 p4]"},
		{"covered smaller radius", geo.Offset(sol, 520, 0), 250, 1, "[p2 p1]"},
		{"far away", geo.Offset(sol, 5000, 0), 500, 2, "[]"},
		{"larger radius than cached", sol, 3000, 3, "[p0 p1 p2 p3 p4]"},
	}

	for _, step := range steps {
		got, err := l.FetchNearby(ctx, step.location, step.radius, 0)
		if err != nil {
			t.Fatalf("%s: FetchNearby() error = %v", step.name, err)
		}
		if nearby, _ := upstream.calls(); nearby != step.wantCalls {
			t.Errorf("%s: upstream calls = %d, want %d", step.name, nearby, step.wantCalls)
		}
		if ids := fmt.Sprint(placeIDs(got)); ids != step.want {
			t.Errorf("%s: got %s, want %s", step.name, ids, step.want)
		}
	}

	if stats := l.Stats(); stats.MemoryHits != 2 || stats.UpstreamCalls != 3 {
		t.Errorf("Stats() = %+v, want 2 memory hits and 3 upstream calls", stats)
	}
}

func TestLayered_IncompleteEntryOnlyServesSameArea(t *testing.T) {
	t.Parallel()

	upstream := newCountingProvider(fixturePlaces())
	l := newTestLayered(upstream, newFakeClock())
	ctx := context.Background()

	if _, err := l.FetchNearby(ctx, sol, 2000, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := l.FetchNearby(ctx, sol, 2000, 2); err != nil {
		t.Fatal(err)
	}
	if nearby, _ := upstream.calls(); nearby != 1 {
		t.Errorf("same area: upstream calls = %d, want 1", nearby)
	}

	got, err := l.FetchNearby(ctx, geo.Offset(sol, 310, 0), 1000, 2)
	if err != nil {
		t.Fatal(err)
	}
	if nearby, _ := upstream.calls(); nearby != 2 {
		t.Errorf("other area: upstream calls = %d, want 2", nearby)
	}
	if ids := fmt.Sprint(placeIDs(got)); ids != "[p1 p0]" {
		t.Errorf("got %s, want [p1 p0]", ids)
	}
}

func TestLayered_StoreWriteThrough(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	clock := newFakeClock()
	ctx := context.Background()

	first := newCountingProvider(fixturePlaces())
	l1 := newTestLayered(first, clock, WithStore(store, 10*time.Minute))
	if _, err := l1.FetchNearby(ctx, sol, 2000, 0); err != nil {
		t.Fatal(err)
	}

	// A second process sharing the store answers without upstream.
	second := newCountingProvider(fixturePlaces())
	l2 := newTestLayered(second, clock, WithStore(store, 10*time.Minute))
	got, err := l2.FetchNearby(ctx, sol, 2000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if nearby, _ := second.calls(); nearby != 0 {
		t.Errorf("upstream calls = %d, want 0", nearby)
	}
	if len(got) != 5 {
		t.Errorf("got %d places, want 5", len(got))
	}
	if l2.Stats().StoreHits != 1 {
		t.Errorf("StoreHits = %d, want 1", l2.Stats().StoreHits)
	}
}

func TestLayered_StaleStoreOnUpstreamFailure(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	clock := newFakeClock()
	upstream := newCountingProvider(fixturePlaces())
	l := newTestLayered(upstream, clock, WithStore(store, 10*time.Minute))
	ctx := context.Background()

	if _, err := l.FetchNearby(ctx, sol, 2000, 0); err != nil {
		t.Fatal(err)
	}

	// Past both the memory TTL and the store freshness window.
	clock.Advance(20 * time.Minute)
	upstream.setFail(true)

	got, err := l.FetchNearby(ctx, sol, 2000, 0)
	if err != nil {
		t.Fatalf("FetchNearby() error = %v, want stale data", err)
	}
	if len(got) != 5 {
		t.Errorf("got %d places, want 5", len(got))
	}
	if nearby, _ := upstream.calls(); nearby != 2 {
		t.Errorf("upstream calls = %d, want 2", nearby)
	}
	if l.Stats().StaleServed != 1 {
		t.Errorf("StaleServed = %d, want 1", l.Stats().StaleServed)
	}
}

func TestLayered_UpstreamFailureWithoutData(t *testing.T) {
	t.Parallel()

	upstream := newCountingProvider(fixturePlaces())
	upstream.setFail(true)
	l := newTestLayered(upstream, newFakeClock(), WithStore(newTestStore(t), time.Minute))

	_, err := l.FetchNearby(context.Background(), sol, 2000, 0)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("error = %v, want ErrProviderUnavailable", err)
	}
	if !errors.Is(err, errUpstream) {
		t.Errorf("error = %v, want wrapped upstream error", err)
	}

	if _, err := l.FetchByID(context.Background(), "p1"); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("FetchByID error = %v, want ErrProviderUnavailable", err)
	}
}

func TestLayered_FetchByID(t *testing.T) {
	t.Parallel()

	upstream := newCountingProvider(fixturePlaces())
	l := newTestLayered(upstream, newFakeClock(), WithStore(newTestStore(t), time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		place, err := l.FetchByID(ctx, "p3")
		if err != nil || place.ID != "p3" {
			t.Fatalf("FetchByID() = %v, %v", place, err)
		}
	}
	if _, byID := upstream.calls(); byID != 1 {
		t.Errorf("upstream by-id calls = %d, want 1", byID)
	}

	if _, err := l.FetchByID(ctx, "missing"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("error = %v, want ErrPlaceNotFound", err)
	}
}

func TestLayered_CleanupExpired(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	upstream := newCountingProvider(fixturePlaces())
	l := newTestLayered(upstream, clock)
	ctx := context.Background()

	if _, err := l.FetchNearby(ctx, sol, 2000, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := l.FetchNearby(ctx, geo.Offset(sol, 5000, 0), 500, 0); err != nil {
		t.Fatal(err)
	}
	if l.Stats().CachedAreas != 2 {
		t.Fatalf("CachedAreas = %d, want 2", l.Stats().CachedAreas)
	}

	clock.Advance(2 * time.Minute)
	if removed := l.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", removed)
	}
	if l.Stats().CachedAreas != 0 {
		t.Errorf("CachedAreas = %d, want 0", l.Stats().CachedAreas)
	}
	if n := l.centers.Size(); n != 0 {
		t.Errorf("area index holds %d centers, want 0", n)
	}
}

func TestLayered_Ping(t *testing.T) {
	t.Parallel()

	l := newTestLayered(newCountingProvider(nil), newFakeClock())
	if err := l.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
