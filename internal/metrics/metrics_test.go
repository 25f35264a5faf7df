// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/places/trending", "200"))

	RecordAPIRequest("GET", "/api/v1/places/trending", "200", 12*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/places/trending", "200", 30*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/places/trending", "200"))
	if after-before != 2 {
		t.Errorf("expected 2 new requests, got %v", after-before)
	}
}

// TestTrackActiveRequest tests the active request gauge
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("expected gauge +2, got %v", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected gauge back at %v, got %v", before, got)
	}
}

// TestRecordRecommendation tests recommendation metrics by source
func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		source  string
		results int
	}{
		{SourceLive, 20},
		{SourceCache, 12},
		{SourceFallback, 3},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendationRequests.WithLabelValues(tt.source))
			RecordRecommendation(tt.source, 5*time.Millisecond, tt.results)
			after := testutil.ToFloat64(RecommendationRequests.WithLabelValues(tt.source))
			if after-before != 1 {
				t.Errorf("expected counter +1 for %s, got %v", tt.source, after-before)
			}
		})
	}
}

// TestRecordProviderFetch tests provider fetch success and error counting
func TestRecordProviderFetch(t *testing.T) {
	okBefore := testutil.ToFloat64(ProviderFetches.WithLabelValues("test", "success"))
	errBefore := testutil.ToFloat64(ProviderFetches.WithLabelValues("test", "error"))

	RecordProviderFetch("test", time.Millisecond, 42, nil)
	RecordProviderFetch("test", time.Millisecond, 0, errors.New("upstream down"))

	if got := testutil.ToFloat64(ProviderFetches.WithLabelValues("test", "success")) - okBefore; got != 1 {
		t.Errorf("success counter +%v, want +1", got)
	}
	if got := testutil.ToFloat64(ProviderFetches.WithLabelValues("test", "error")) - errBefore; got != 1 {
		t.Errorf("error counter +%v, want +1", got)
	}
}

// TestRecordCacheLookup tests hit and miss counters
func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("unit"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("unit"))

	RecordCacheLookup("unit", true)
	RecordCacheLookup("unit", false)
	RecordCacheLookup("unit", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("unit")) - hits; got != 1 {
		t.Errorf("hits +%v, want +1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("unit")) - misses; got != 2 {
		t.Errorf("misses +%v, want +2", got)
	}

	evictions := testutil.ToFloat64(CacheEvictions.WithLabelValues("unit"))
	RecordCacheEvictions("unit", 0)
	RecordCacheEvictions("unit", 3)
	if got := testutil.ToFloat64(CacheEvictions.WithLabelValues("unit")) - evictions; got != 3 {
		t.Errorf("evictions +%v, want +3", got)
	}
}

// TestRecordRouteOptimization tests route counters by feasibility
func TestRecordRouteOptimization(t *testing.T) {
	feasible := testutil.ToFloat64(RouteOptimizations.WithLabelValues("true"))
	infeasible := testutil.ToFloat64(RouteOptimizations.WithLabelValues("false"))

	RecordRouteOptimization(4, true, 200*time.Microsecond)
	RecordRouteOptimization(6, false, 300*time.Microsecond)

	if got := testutil.ToFloat64(RouteOptimizations.WithLabelValues("true")) - feasible; got != 1 {
		t.Errorf("feasible +%v, want +1", got)
	}
	if got := testutil.ToFloat64(RouteOptimizations.WithLabelValues("false")) - infeasible; got != 1 {
		t.Errorf("infeasible +%v, want +1", got)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "test-breaker"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}

	CircuitBreakerRequests.WithLabelValues(cbName, "success").Inc()
	CircuitBreakerRequests.WithLabelValues(cbName, "failure").Inc()
	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()
}

// TestConcurrentRecording tests that metric helpers are safe for concurrent use
func TestConcurrentRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordRecommendation(SourceLive, time.Millisecond, 10)
			RecordCacheLookup("concurrent", true)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()
}

// TestMetricsRegistered tests that all collectors describe themselves
func TestMetricsRegistered(t *testing.T) {
	collectors := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		RecommendationRequests,
		RecommendationDuration,
		RecommendationResults,
		RecommendationFilterRelaxations,
		ShownHistorySize,
		ProviderFetchDuration,
		ProviderFetches,
		ProviderPlacesReturned,
		ProviderRetries,
		RadiusExpansions,
		CacheHits,
		CacheMisses,
		CacheSize,
		CacheEvictions,
		RouteOptimizations,
		RouteStops,
		RouteOptimizationDuration,
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerConsecutiveFailures,
		CircuitBreakerTransitions,
		SupervisorServiceRestarts,
		AppInfo,
		AppUptime,
	}

	for _, c := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordRecommendation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordRecommendation(SourceLive, 10*time.Millisecond, 20)
	}
}
