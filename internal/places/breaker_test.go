// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/metrics"
)

func testBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:      true,
		MaxRequests:  1,
		Interval:     0,
		Timeout:      time.Minute,
		MinRequests:  4,
		FailureRatio: 0.5,
	}
}

func TestBreakerProvider_Trips(t *testing.T) {
	t.Parallel()

	upstream := newCountingProvider(fixturePlaces())
	upstream.setFail(true)
	b := NewBreakerProvider("test-trip", upstream, testBreakerConfig(), logging.NewTestLogger(io.Discard))
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := b.FetchNearby(ctx, sol, 1000, 0); !errors.Is(err, errUpstream) {
			t.Fatalf("call %d error = %v, want upstream error", i, err)
		}
	}
	if b.State() != "open" {
		t.Fatalf("State() = %s, want open", b.State())
	}

	_, err := b.FetchNearby(ctx, sol, 1000, 0)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("open circuit error = %v, want ErrProviderUnavailable", err)
	}
	if nearby, _ := upstream.calls(); nearby != 4 {
		t.Errorf("upstream called %d times, want 4", nearby)
	}

	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-trip")); got != 2 {
		t.Errorf("state gauge = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("test-trip", "rejected")); got != 1 {
		t.Errorf("rejected = %v, want 1", got)
	}
}

func TestBreakerProvider_NotFoundDoesNotTrip(t *testing.T) {
	t.Parallel()

	upstream := newCountingProvider(fixturePlaces())
	b := NewBreakerProvider("test-not-found", upstream, testBreakerConfig(), logging.NewTestLogger(io.Discard))

	for i := 0; i < 10; i++ {
		if _, err := b.FetchByID(context.Background(), "missing"); !errors.Is(err, ErrPlaceNotFound) {
			t.Fatalf("error = %v, want ErrPlaceNotFound", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s, want closed", b.State())
	}

	place, err := b.FetchByID(context.Background(), "p1")
	if err != nil || place.ID != "p1" {
		t.Errorf("FetchByID(p1) = %v, %v", place, err)
	}
}

func TestBreakerProvider_PassesResults(t *testing.T) {
	t.Parallel()

	b := NewBreakerProvider("test-pass", newCountingProvider(fixturePlaces()), testBreakerConfig(), logging.NewTestLogger(io.Discard))
	got, err := b.FetchNearby(context.Background(), sol, 500, 0)
	if err != nil {
		t.Fatalf("FetchNearby() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d places, want 2", len(got))
	}
}
