// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"time"

	"github.com/tomtom215/sendero/internal/models"
)

// Filter applies the hard constraints of a request before scoring.
// It is stateless and safe for concurrent use.
type Filter struct {
	config *Config
}

// NewFilter creates a filter stage using cfg.
func NewFilter(cfg *Config) *Filter {
	return &Filter{config: cfg}
}

// Apply narrows places in order: safety, categories, budget, minimum rating,
// open now. A nil filters value applies only the safety filter, the profile
// budget tolerance and the default minimum rating. The input slice is not modified.
func (f *Filter) Apply(places []models.Place, filters *models.Filters, profile *models.UserProfile, now time.Time) []models.Place {
	out := make([]models.Place, 0, len(places))
	for i := range places {
		if f.keep(&places[i], filters, profile, now) {
			out = append(out, places[i])
		}
	}
	return out
}

func (f *Filter) keep(p *models.Place, filters *models.Filters, profile *models.UserProfile, now time.Time) bool {
	if f.config.Safety.Enabled && p.Safety() < f.config.Safety.MinSafetyRating {
		return false
	}

	if filters != nil && len(filters.Categories) > 0 && !containsCategory(filters.Categories, p.Category) {
		return false
	}

	if maxLevel, ok := f.maxBudgetOrdinal(filters, profile); ok && p.PriceLevel.Ordinal() > maxLevel {
		return false
	}

	minRating := f.config.Filter.DefaultMinRating
	if filters != nil && filters.MinRating != nil {
		minRating = *filters.MinRating
	}
	if p.Rating < minRating {
		return false
	}

	if filters != nil && filters.OpenNow && !OpenAt(p, now, false) {
		return false
	}

	return true
}

// maxBudgetOrdinal returns the most expensive price ordinal allowed.
// An explicit budget wins over the profile budget plus tolerance.
func (f *Filter) maxBudgetOrdinal(filters *models.Filters, profile *models.UserProfile) (int, bool) {
	if filters != nil && filters.BudgetLevel != nil && filters.BudgetLevel.Valid() {
		return filters.BudgetLevel.Ordinal(), true
	}
	if profile != nil && profile.PreferredBudget.Valid() {
		return profile.PreferredBudget.Ordinal() + f.config.Filter.BudgetTolerance, true
	}
	return 0, false
}

// OpenAt reports whether p has hours for the weekday of t and the clock time
// of t falls in that day's window. Places without hours are closed here;
// use IsPlaceOpen for the lenient check.
func OpenAt(p *models.Place, t time.Time, closeInclusive bool) bool {
	hours, ok := p.OpeningHours.For(t.Weekday())
	if !ok {
		return false
	}
	return hours.Contains(models.MinuteOfDay(t), closeInclusive)
}

// IsPlaceOpen reports whether p is open at t. Places that publish no opening
// hours at all are assumed open; otherwise the weekday must have hours and
// t must fall within [open, close).
func IsPlaceOpen(p *models.Place, t time.Time) bool {
	if !p.HasOpeningHours() {
		return true
	}
	return OpenAt(p, t, false)
}

func containsCategory(cats []models.Category, c models.Category) bool {
	for _, x := range cats {
		if x == c {
			return true
		}
	}
	return false
}
