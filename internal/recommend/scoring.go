// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"math"
	"time"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/models"
)

// budgetScores indexes the budget sub-score by ordinal distance.
var budgetScores = [...]float64{1.0, 0.7, 0.4, 0.2}

// Scorer computes relevance scores in [0, 100].
// It is stateless and safe for concurrent use.
type Scorer struct {
	config *Config
}

// NewScorer creates a scorer using cfg.
func NewScorer(cfg *Config) *Scorer {
	return &Scorer{config: cfg}
}

// Score returns the relevance of p for profile at location, evaluated at now.
func (s *Scorer) Score(p *models.Place, profile *models.UserProfile, location models.Location, now time.Time) float64 {
	return s.combine(s.SubScores(p, profile, location, now))
}

// SubScores returns the unweighted components of the score.
func (s *Scorer) SubScores(p *models.Place, profile *models.UserProfile, location models.Location, now time.Time) SubScores {
	sub := SubScores{
		Interests:      InterestScore(p, profile),
		Rating:         clamp01(p.Rating / 5),
		Popularity:     math.Min(float64(p.ReviewCount)/100, 1),
		Distance:       DistanceScore(geo.PlaceDistance(location, p), profile),
		Budget:         BudgetScore(p.PriceLevel, profile.Budget()),
		ActivityLevel:  ActivityScore(p, profile),
		TravelStyle:    TravelStyleScore(p, profile),
		Dietary:        DietaryScore(p, profile),
		TimePreference: s.timePreferenceScore(p, profile, now),
	}

	// Only an explicit safety rating adjusts the score; the 4.0 default does not.
	if s.config.Safety.Enabled && p.SafetyRating != nil {
		sub.SafetyAdjustment = (*p.SafetyRating - 3) * s.config.Safety.Weight * 10
	}

	return sub
}

func (s *Scorer) combine(sub SubScores) float64 {
	w := s.config.Weights
	score := sub.Interests*w.Interests +
		sub.Rating*w.Rating +
		sub.Popularity*w.Popularity +
		sub.Distance*w.Distance +
		sub.Budget*w.Budget +
		sub.ActivityLevel*w.ActivityLevel +
		sub.TravelStyle*w.TravelStyle +
		sub.Dietary*w.Dietary +
		sub.TimePreference*w.TimePreference +
		sub.SafetyAdjustment

	return math.Max(0, math.Min(100, score))
}

// InterestScore measures how well the category and tags of p match the
// profile interests. Without interests, review count stands in.
func InterestScore(p *models.Place, profile *models.UserProfile) float64 {
	if len(profile.Interests) == 0 {
		return math.Min(float64(p.ReviewCount)/50, 1) * 0.7
	}

	matches := 0.0
	for _, raw := range profile.Interests {
		interest := raw.Canonical()
		if interestCategories[interest].has(p.Category) {
			matches += 1.0
		}
		names := interestTagNames[interest]
		if names == nil {
			names = []string{string(interest)}
		}
		matches += float64(countTagsContainingAny(p, names)) * 0.3
	}

	return math.Min(matches/float64(len(profile.Interests)), 1)
}

// DistanceScore decays linearly from 1 at the origin to 0 at the profile's
// maximum travel distance.
func DistanceScore(distanceMeters float64, profile *models.UserProfile) float64 {
	return math.Max(0, 1-distanceMeters/profile.MaxDistanceMeters())
}

// BudgetScore rates a price level by its ordinal distance from the preferred budget.
func BudgetScore(place, preferred models.PriceLevel) float64 {
	placeOrd := place.Ordinal()
	if placeOrd < 0 {
		return budgetScores[len(budgetScores)-1]
	}
	diff := placeOrd - preferred.Ordinal()
	if diff < 0 {
		diff = -diff
	}
	if diff >= len(budgetScores) {
		diff = len(budgetScores) - 1
	}
	return budgetScores[diff]
}

// ActivityScore is 1 when the category suits the activity level, 0.5 when it
// does not and 0.7 when the profile has no activity level.
func ActivityScore(p *models.Place, profile *models.UserProfile) float64 {
	if profile.ActivityLevel == "" {
		return 0.7
	}
	if activityCategories[profile.ActivityLevel].has(p.Category) {
		return 1.0
	}
	return 0.5
}

// TravelStyleScore is 1 when a tag suits the travel style, 0.6 when none does
// and 0.7 when the profile has no travel style.
func TravelStyleScore(p *models.Place, profile *models.UserProfile) float64 {
	if profile.TravelStyle == "" {
		return 0.7
	}
	if anyTagContains(p, travelStyleKeywords[profile.TravelStyle]) {
		return 1.0
	}
	return 0.6
}

// DietaryScore is the fraction of dietary preferences a food or drink place
// advertises in its tags. Other categories, and profiles without preferences,
// score 1. A food place without tags scores 0.5.
func DietaryScore(p *models.Place, profile *models.UserProfile) float64 {
	if !p.Category.IsFoodAndDrink() {
		return 1.0
	}

	prefs := make([]models.DietaryPreference, 0, len(profile.DietaryPreferences))
	for _, d := range profile.DietaryPreferences {
		if d == models.DietaryNone {
			// "none" alongside real preferences still means no restriction.
			return 1.0
		}
		prefs = append(prefs, d)
	}
	if len(prefs) == 0 {
		return 1.0
	}
	if len(p.Tags) == 0 {
		return 0.5
	}

	matched := 0
	for _, d := range prefs {
		if anyTagContains(p, dietaryKeywords[d]) {
			matched++
		}
	}
	return float64(matched) / float64(len(prefs))
}

func (s *Scorer) timePreferenceScore(p *models.Place, profile *models.UserProfile, now time.Time) float64 {
	if len(profile.PreferredTimes) == 0 {
		return 1.0
	}
	if profile.PrefersTime(s.config.TimeContext.PeriodAt(now)) {
		return 1.0
	}
	if p.HasOpeningHours() {
		return 0.7
	}
	return 0.8
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
