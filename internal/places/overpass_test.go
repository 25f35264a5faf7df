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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/models"
	"github.com/tomtom215/sendero/internal/testinfra"
)

const overpassFixture = `{
  "version": 0.6,
  "osm3s": {"timestamp_osm_base": "2026-06-01T00:00:00Z"},
  "elements": [
    {"type": "node", "id": 1, "lat": 40.4169, "lon": -3.7036,
     "tags": {"name": "Casa Labra", "amenity": "restaurant", "cuisine": "spanish;tapas",
              "diet:vegetarian": "yes", "opening_hours": "Mo-Sa 11:00-23:30; Su off",
              "addr:street": "Calle de Tetuán", "addr:housenumber": "12"}},
    {"type": "node", "id": 2, "lat": 40.4170, "lon": -3.7040, "tags": {"amenity": "restaurant"}},
    {"type": "node", "id": 3, "lat": 40.4172, "lon": -3.7040, "tags": {"name": "Bench", "amenity": "bench"}},
    {"type": "way", "id": 10, "nodes": [100, 101], "tags": {"name": "Plaza de la Villa", "place": "square"}},
    {"type": "node", "id": 100, "lat": 40.4150, "lon": -3.7100},
    {"type": "node", "id": 101, "lat": 40.4152, "lon": -3.7102}
  ]
}`

func testOverpassConfig(endpoint string) OverpassConfig {
	return OverpassConfig{
		Endpoint:          endpoint,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
		Burst:             10,
		MaxParallel:       1,
	}
}

func TestOverpassProvider_FetchNearby(t *testing.T) {
	t.Parallel()

	srv := testinfra.NewMockOverpassServer(t, overpassFixture)
	p := NewOverpassProvider(testOverpassConfig(srv.URL()), logging.NewTestLogger(io.Discard))

	got, err := p.FetchNearby(context.Background(), sol, 1000, 0)
	if err != nil {
		t.Fatalf("FetchNearby() error = %v", err)
	}
	captures := srv.Captures()
	if len(captures) != 1 {
		t.Fatalf("server called %d times, want 1", len(captures))
	}
	if q := captures[0].Query; q != "" && !strings.Contains(q, "around:1000,40.416800,-3.703800") {
		t.Errorf("query does not filter around the location:\n%s", q)
	}
	if ids := fmt.Sprint(placeIDs(got)); ids != "[osm-node-1 osm-way-10]" {
		t.Fatalf("FetchNearby() = %s, want [osm-node-1 osm-way-10]", ids)
	}

	labra := got[0]
	if labra.Category != models.CategoryRestaurant {
		t.Errorf("Category = %s, want restaurant", labra.Category)
	}
	if labra.Address != "Calle de Tetuán 12" {
		t.Errorf("Address = %q", labra.Address)
	}
	if fmt.Sprint(labra.Tags) != "[spanish tapas vegetarian]" {
		t.Errorf("Tags = %v", labra.Tags)
	}
	if _, open := labra.OpeningHours["sunday"]; open {
		t.Error("Sunday should be closed")
	}
	if labra.OpeningHours["monday"].Close != "23:30" {
		t.Errorf("Monday hours = %+v", labra.OpeningHours["monday"])
	}
	if !labra.Verified {
		t.Error("OSM places should be verified")
	}

	plaza := got[1]
	if plaza.Category != models.CategoryPlaza || plaza.PriceLevel != models.PriceLow {
		t.Errorf("plaza = %s/%s, want plaza/low", plaza.Category, plaza.PriceLevel)
	}
	if plaza.Latitude < 40.4150 || plaza.Latitude > 40.4152 {
		t.Errorf("way centroid latitude = %v", plaza.Latitude)
	}
}

func TestOverpassProvider_FetchNearbyRadius(t *testing.T) {
	t.Parallel()

	srv := testinfra.NewMockOverpassServer(t, overpassFixture)
	p := NewOverpassProvider(testOverpassConfig(srv.URL()), logging.NewTestLogger(io.Discard))

	got, err := p.FetchNearby(context.Background(), sol, 100, 0)
	if err != nil {
		t.Fatalf("FetchNearby() error = %v", err)
	}
	if ids := fmt.Sprint(placeIDs(got)); ids != "[osm-node-1]" {
		t.Errorf("FetchNearby() = %s, want [osm-node-1]", ids)
	}
}

func TestOverpassProvider_FetchByID(t *testing.T) {
	t.Parallel()

	srv := testinfra.NewMockOverpassServer(t, overpassFixture)
	p := NewOverpassProvider(testOverpassConfig(srv.URL()), logging.NewTestLogger(io.Discard))

	place, err := p.FetchByID(context.Background(), "osm-way-10")
	if err != nil {
		t.Fatalf("FetchByID() error = %v", err)
	}
	if place.Name != "Plaza de la Villa" {
		t.Errorf("Name = %q", place.Name)
	}

	if _, err := p.FetchByID(context.Background(), "osm-node-999"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("missing node error = %v, want ErrPlaceNotFound", err)
	}

	before := len(srv.Captures())
	for _, id := range []string{"static-prado", "osm-relation-1", "osm-node-x"} {
		if _, err := p.FetchByID(context.Background(), id); !errors.Is(err, ErrPlaceNotFound) {
			t.Errorf("FetchByID(%q) error = %v, want ErrPlaceNotFound", id, err)
		}
	}
	if len(srv.Captures()) != before {
		t.Error("malformed ids should not reach the server")
	}
}

func TestOverpassProvider_ServerError(t *testing.T) {
	t.Parallel()

	srv := testinfra.NewMockOverpassServer(t, overpassFixture)
	srv.Respond(http.StatusTooManyRequests, "rate limited")
	p := NewOverpassProvider(testOverpassConfig(srv.URL()), logging.NewTestLogger(io.Discard))

	if _, err := p.FetchNearby(context.Background(), sol, 1000, 0); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestOverpassProvider_ContextCanceled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = io.WriteString(w, overpassFixture)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	p := NewOverpassProvider(testOverpassConfig(srv.URL), logging.NewTestLogger(io.Discard))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := p.FetchNearby(ctx, sol, 1000, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestCategoryFromTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tags map[string]string
		want models.Category
		ok   bool
	}{
		{map[string]string{"amenity": "pub"}, models.CategoryBar, true},
		{map[string]string{"amenity": "place_of_worship"}, models.CategoryChurch, true},
		{map[string]string{"tourism": "gallery"}, models.CategoryGallery, true},
		{map[string]string{"tourism": "attraction"}, models.CategoryMonument, true},
		{map[string]string{"historic": "castle"}, models.CategoryMonument, true},
		{map[string]string{"leisure": "park"}, models.CategoryPark, true},
		{map[string]string{"shop": "books"}, models.CategoryShop, true},
		{map[string]string{"amenity": "parking"}, "", false},
	}

	for _, tt := range tests {
		got, ok := categoryFromTags(tt.tags)
		if got != tt.want || ok != tt.ok {
			t.Errorf("categoryFromTags(%v) = %q, %v; want %q, %v", tt.tags, got, ok, tt.want, tt.ok)
		}
	}
}
