// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/sendero/internal/config"
	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/metrics"
)

func testSlog() *slog.Logger {
	return logging.NewSlogLogger(logging.NewTestLogger(io.Discard))
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(testSlog(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(testSlog(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
		}
	})
}

func TestTreeConfigFromConfig(t *testing.T) {
	got := TreeConfigFromConfig(config.SupervisorConfig{
		FailureThreshold: 3,
		FailureDecay:     10,
		FailureBackoff:   2 * time.Second,
		ShutdownTimeout:  5 * time.Second,
		JanitorInterval:  time.Minute,
	})
	want := TreeConfig{
		FailureThreshold: 3,
		FailureDecay:     10,
		FailureBackoff:   2 * time.Second,
		ShutdownTimeout:  5 * time.Second,
	}
	if got != want {
		t.Errorf("TreeConfigFromConfig() = %+v, want %+v", got, want)
	}
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("starts every layer and stops on cancel", func(t *testing.T) {
		tree, _ := NewSupervisorTree(testSlog(), TreeConfig{
			FailureBackoff:  100 * time.Millisecond,
			ShutdownTimeout: time.Second,
		})

		data := newMockService("mock-data")
		api := newMockService("mock-api")
		tree.AddDataService(data)
		tree.AddAPIService(api)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := tree.ServeBackground(ctx)

		waitFor(t, "services to start", func() bool {
			return data.starts() >= 1 && api.starts() >= 1
		})
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("tree did not shut down in time")
		}

		report, err := tree.UnstoppedServiceReport()
		if err != nil {
			t.Fatalf("UnstoppedServiceReport() error = %v", err)
		}
		if len(report) != 0 {
			t.Errorf("unstopped services: %v", report)
		}
	})

	t.Run("RemoveAndWait stops a data service", func(t *testing.T) {
		tree, _ := NewSupervisorTree(testSlog(), TreeConfig{ShutdownTimeout: time.Second})

		data := newMockService("removable")
		token := tree.AddDataService(data)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		errCh := tree.ServeBackground(ctx)

		waitFor(t, "service to start", func() bool { return data.starts() >= 1 })
		if err := tree.RemoveAndWait(token, time.Second); err != nil {
			t.Errorf("RemoveAndWait() error = %v", err)
		}

		cancel()
		<-errCh
	})
}

func TestSupervisorTreeFailureHandling(t *testing.T) {
	tree, _ := NewSupervisorTree(testSlog(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := failing("flaky-janitor", 2)
	stable := newMockService("stable-http")
	tree.AddDataService(flaky)
	tree.AddAPIService(stable)

	before := testutil.ToFloat64(metrics.SupervisorServiceRestarts.WithLabelValues("flaky-janitor"))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitFor(t, "flaky service to recover", func() bool { return flaky.starts() >= 3 })
	cancel()
	<-errCh

	if stable.starts() != 1 {
		t.Errorf("stable service started %d times, want 1", stable.starts())
	}

	restarts := testutil.ToFloat64(metrics.SupervisorServiceRestarts.WithLabelValues("flaky-janitor")) - before
	if restarts < 2 {
		t.Errorf("restart counter increased by %v, want at least 2", restarts)
	}
}
