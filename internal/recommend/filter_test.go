// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/sendero/internal/models"
)

func ids(places []models.Place) []string {
	out := make([]string, len(places))
	for i := range places {
		out[i] = places[i].ID
	}
	return out
}

func filterFixture() []models.Place {
	weekdays := models.OpeningHours{"monday": {Open: "09:00", Close: "14:00"}}
	return []models.Place{
		{ID: "cheap-rest", Category: models.CategoryRestaurant, PriceLevel: models.PriceLow, Rating: 4.2},
		{ID: "mid-museum", Category: models.CategoryMuseum, PriceLevel: models.PriceMedium, Rating: 4.6, OpeningHours: weekdays},
		{ID: "lux-rest", Category: models.CategoryRestaurant, PriceLevel: models.PricePremium, Rating: 4.9},
		{ID: "high-bar", Category: models.CategoryBar, PriceLevel: models.PriceHigh, Rating: 3.5},
		{ID: "low-rated", Category: models.CategoryPark, PriceLevel: models.PriceLow, Rating: 2.5},
		{ID: "unsafe", Category: models.CategoryPark, PriceLevel: models.PriceLow, Rating: 4.0, SafetyRating: models.Float64Ptr(2)},
		{ID: "sunday-only", Category: models.CategoryCafe, PriceLevel: models.PriceLow, Rating: 4.0,
			OpeningHours: models.OpeningHours{"sunday": {Open: "08:00", Close: "20:00"}}},
	}
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	f := NewFilter(DefaultConfig())
	medium := models.PriceMedium
	low := models.PriceLow
	profile := models.DefaultProfile() // medium budget: up to high with tolerance
	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters *models.Filters
		want    []string
	}{
		{
			name: "defaults only",
			want: []string{"cheap-rest", "mid-museum", "high-bar", "sunday-only"},
		},
		{
			name:    "categories",
			filters: &models.Filters{Categories: []models.Category{models.CategoryRestaurant, models.CategoryBar}},
			want:    []string{"cheap-rest", "high-bar"},
		},
		{
			name:    "explicit budget replaces tolerance",
			filters: &models.Filters{BudgetLevel: &medium},
			want:    []string{"cheap-rest", "mid-museum", "sunday-only"},
		},
		{
			name:    "explicit low budget",
			filters: &models.Filters{BudgetLevel: &low},
			want:    []string{"cheap-rest", "sunday-only"},
		},
		{
			name:    "min rating",
			filters: &models.Filters{MinRating: models.Float64Ptr(4.5)},
			want:    []string{"mid-museum"},
		},
		{
			name:    "lower min rating keeps low rated",
			filters: &models.Filters{MinRating: models.Float64Ptr(2.0)},
			want:    []string{"cheap-rest", "mid-museum", "high-bar", "low-rated", "sunday-only"},
		},
		{
			name:    "open now requires hours",
			filters: &models.Filters{OpenNow: true},
			want:    []string{"mid-museum"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(f.Apply(filterFixture(), tt.filters, &profile, at))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_SafetyDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Safety.Enabled = false
	f := NewFilter(cfg)
	profile := models.DefaultProfile()

	got := ids(f.Apply(filterFixture(), nil, &profile, monday))
	found := false
	for _, id := range got {
		if id == "unsafe" {
			found = true
		}
	}
	if !found {
		t.Errorf("unsafe place should pass with safety disabled: %v", got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	f := NewFilter(DefaultConfig())
	profile := models.DefaultProfile()
	high := models.PriceHigh

	filterSets := []*models.Filters{
		nil,
		{OpenNow: true},
		{BudgetLevel: &high, MinRating: models.Float64Ptr(3.5)},
		{Categories: []models.Category{models.CategoryPark, models.CategoryCafe}, OpenNow: true},
	}
	times := []time.Time{
		monday,
		time.Date(2026, 6, 7, 9, 0, 0, 0, time.UTC),   // Sunday
		time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC),  // Monday at closing
		time.Date(2026, 6, 2, 23, 30, 0, 0, time.UTC), // Tuesday night
	}

	for i, filters := range filterSets {
		for _, at := range times {
			once := f.Apply(filterFixture(), filters, &profile, at)
			twice := f.Apply(once, filters, &profile, at)
			if fmt.Sprint(ids(once)) != fmt.Sprint(ids(twice)) {
				t.Errorf("filters[%d] at %v: once=%v twice=%v", i, at, ids(once), ids(twice))
			}
		}
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	f := NewFilter(DefaultConfig())
	profile := models.DefaultProfile()
	input := filterFixture()

	f.Apply(input, &models.Filters{OpenNow: true}, &profile, monday)

	if len(input) != 7 || input[0].ID != "cheap-rest" {
		t.Errorf("input modified: %v", ids(input))
	}
}

func TestOpenAt(t *testing.T) {
	t.Parallel()

	p := models.Place{OpeningHours: models.OpeningHours{"monday": {Open: "09:00", Close: "14:00"}}}

	tests := []struct {
		name      string
		at        time.Time
		inclusive bool
		want      bool
	}{
		{"before open", time.Date(2026, 6, 1, 8, 59, 0, 0, time.UTC), false, false},
		{"at open", time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), false, true},
		{"at close exclusive", time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC), false, false},
		{"at close inclusive", time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC), true, true},
		{"other weekday", time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OpenAt(&p, tt.at, tt.inclusive); got != tt.want {
				t.Errorf("OpenAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPlaceOpen(t *testing.T) {
	t.Parallel()

	noHours := models.Place{}
	if !IsPlaceOpen(&noHours, monday) {
		t.Error("place without hours should be considered open")
	}

	p := models.Place{OpeningHours: models.OpeningHours{"monday": {Open: "09:00", Close: "14:00"}}}
	if !IsPlaceOpen(&p, monday) {
		t.Error("expected open at 10:00 on Monday")
	}
	if IsPlaceOpen(&p, time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)) {
		t.Error("expected closed on Tuesday")
	}
}
