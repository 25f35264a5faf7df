// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package services

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/sendero/internal/metrics"
)

type countingCache struct {
	calls   atomic.Int32
	removes int
}

func (c *countingCache) CleanupExpired() int {
	c.calls.Add(1)
	return c.removes
}

func TestJanitorService_Interface(t *testing.T) {
	var _ suture.Service = (*JanitorService)(nil)
	var _ suture.Service = (*UptimeService)(nil)
}

func TestJanitorService_Sweep(t *testing.T) {
	t.Parallel()

	recs := &countingCache{removes: 3}
	nearby := &countingCache{removes: 0}
	j := NewJanitorService(map[string]ExpiringCache{
		"recommendations": recs,
		"nearby":          nearby,
	}, time.Minute, testLogger())

	if got := j.Sweep(); got != 3 {
		t.Errorf("Sweep() = %d, want 3", got)
	}
	if recs.calls.Load() != 1 || nearby.calls.Load() != 1 {
		t.Errorf("calls = %d/%d, want 1/1", recs.calls.Load(), nearby.calls.Load())
	}
}

func TestJanitorService_DefaultInterval(t *testing.T) {
	t.Parallel()

	j := NewJanitorService(nil, 0, testLogger())
	if j.interval != 5*time.Minute {
		t.Errorf("interval = %v, want 5m", j.interval)
	}
	if j.String() != "cache-janitor" {
		t.Errorf("String() = %q", j.String())
	}
}

func TestJanitorService_Serve(t *testing.T) {
	t.Parallel()

	cache := &countingCache{removes: 1}
	j := NewJanitorService(map[string]ExpiringCache{"recommendations": cache}, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	for cache.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("janitor swept %d times, want at least 2", cache.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestUptimeService(t *testing.T) {
	started := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	u := NewUptimeService("9.9.9-test", started, time.Hour)
	u.now = func() time.Time { return started.Add(90 * time.Second) }

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- u.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for testutil.ToFloat64(metrics.AppUptime) != 90 {
		if time.Now().After(deadline) {
			t.Fatalf("app_uptime_seconds = %v, want 90", testutil.ToFloat64(metrics.AppUptime))
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-errCh

	if got := testutil.ToFloat64(metrics.AppInfo.WithLabelValues("9.9.9-test", runtime.Version())); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}
}
