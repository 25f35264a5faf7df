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

	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(StoreConfig{Enabled: true, FreshFor: time.Hour, RetainFor: 24 * time.Hour}, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Places(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	p := fixturePlace("prado", models.CategoryMuseum, 0, 1000)
	p.OpeningHours = models.OpeningHours{"monday": {Open: "10:00", Close: "20:00"}}
	p.SafetyRating = models.Float64Ptr(4.7)
	p.Tags = []string{"art"}

	if err := store.PutPlaces(ctx, []models.Place{p}); err != nil {
		t.Fatalf("PutPlaces() error = %v", err)
	}

	got, err := store.GetPlace(ctx, "prado")
	if err != nil {
		t.Fatalf("GetPlace() error = %v", err)
	}
	if got.Name != p.Name || got.OpeningHours["monday"].Open != "10:00" || got.Safety() != 4.7 {
		t.Errorf("GetPlace() = %+v", got)
	}

	if _, err := store.GetPlace(ctx, "missing"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("error = %v, want ErrPlaceNotFound", err)
	}

	n, err := store.CountPlaces()
	if err != nil || n != 1 {
		t.Errorf("CountPlaces() = %d, %v; want 1", n, err)
	}
}

func TestStore_Areas(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	storedAt := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	if _, _, ok, err := store.GetArea(ctx, "unknown"); ok || err != nil {
		t.Fatalf("GetArea(unknown) = %v, %v; want miss", ok, err)
	}

	list := fixturePlaces()
	if err := store.PutArea(ctx, "sol", sol, 2000, list, storedAt); err != nil {
		t.Fatalf("PutArea() error = %v", err)
	}

	got, at, ok, err := store.GetArea(ctx, "sol")
	if err != nil || !ok {
		t.Fatalf("GetArea() = %v, %v", ok, err)
	}
	if !at.Equal(storedAt) {
		t.Errorf("storedAt = %v, want %v", at, storedAt)
	}
	if ids := fmt.Sprint(placeIDs(got)); ids != "[p0 p1 p2 p3 p4]" {
		t.Errorf("GetArea() = %s", ids)
	}

	n, _ := store.CountPlaces()
	if n != len(list) {
		t.Errorf("CountPlaces() = %d, want %d", n, len(list))
	}

	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC() on in-memory store error = %v", err)
	}
}
