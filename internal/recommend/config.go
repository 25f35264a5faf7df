// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/sendero/internal/models"
)

// Config contains all tunables of the recommendation engine.
type Config struct {
	// Weights defines the contribution of each sub-score to the 0-100 score.
	Weights Weights `json:"weights" koanf:"weights"`

	// Search contains radius and result-count limits.
	Search SearchConfig `json:"search" koanf:"search"`

	// Filter contains defaults of the filter stage.
	Filter FilterConfig `json:"filter" koanf:"filter"`

	// Diversity contains parameters for category diversity reranking.
	Diversity DiversityConfig `json:"diversity" koanf:"diversity"`

	// TimeContext contains the time-of-day periods and their category boosts.
	TimeContext TimeContextConfig `json:"time_context" koanf:"time_context"`

	// Safety contains the safety filter and score adjustment.
	Safety SafetyConfig `json:"safety" koanf:"safety"`

	// Fallback controls radius expansion, filter relaxation and static data.
	Fallback FallbackConfig `json:"fallback" koanf:"fallback"`

	// Errors controls provider retries and timeouts.
	Errors ErrorsConfig `json:"errors" koanf:"errors"`

	// Features toggles optional behavior.
	Features FeaturesConfig `json:"features" koanf:"features"`

	// Discovery contains trending and similar-place parameters.
	Discovery DiscoveryConfig `json:"discovery" koanf:"discovery"`

	// Cache contains recommendation cache parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`

	// Timezone is the IANA zone that open-now, time preference and the
	// time-context boost are evaluated in when a request names none.
	// Empty keeps the location of the service clock.
	// Default: "" (the config package sets Europe/Madrid).
	Timezone string `json:"timezone" koanf:"timezone"`
}

// Weights are the points each sub-score contributes at its maximum.
// They must sum to 100.
type Weights struct {
	Interests      float64 `json:"interests" koanf:"interests"`
	Rating         float64 `json:"rating" koanf:"rating"`
	Popularity     float64 `json:"popularity" koanf:"popularity"`
	Distance       float64 `json:"distance" koanf:"distance"`
	Budget         float64 `json:"budget" koanf:"budget"`
	ActivityLevel  float64 `json:"activity_level" koanf:"activity_level"`
	TravelStyle    float64 `json:"travel_style" koanf:"travel_style"`
	Dietary        float64 `json:"dietary" koanf:"dietary"`
	TimePreference float64 `json:"time_preference" koanf:"time_preference"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Interests + w.Rating + w.Popularity + w.Distance + w.Budget +
		w.ActivityLevel + w.TravelStyle + w.Dietary + w.TimePreference
}

// ToMap returns the weights keyed by sub-score name.
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		"interests":       w.Interests,
		"rating":          w.Rating,
		"popularity":      w.Popularity,
		"distance":        w.Distance,
		"budget":          w.Budget,
		"activity_level":  w.ActivityLevel,
		"travel_style":    w.TravelStyle,
		"dietary":         w.Dietary,
		"time_preference": w.TimePreference,
	}
}

// SearchConfig contains radius and result-count limits.
type SearchConfig struct {
	// DefaultRadius is the first search radius in meters when the request has no max distance.
	// Default: 5000.
	DefaultRadius float64 `json:"default_radius" koanf:"default_radius"`

	// MaxRadius caps radius expansion in meters.
	// Default: 20000.
	MaxRadius float64 `json:"max_radius" koanf:"max_radius"`

	// MinRadius is the smallest radius sent to the places provider.
	// Default: 1000.
	MinRadius float64 `json:"min_radius" koanf:"min_radius"`

	// MaxResults is the number of recommendations returned.
	// Default: 20.
	MaxResults int `json:"max_results" koanf:"max_results"`

	// MinResults is the candidate count below which the radius is expanded
	// and filters are relaxed.
	// Default: 5.
	MinResults int `json:"min_results" koanf:"min_results"`

	// FetchLimit is the number of places requested from the provider per query.
	// Default: 100.
	FetchLimit int `json:"fetch_limit" koanf:"fetch_limit"`
}

// FilterConfig contains defaults of the filter stage.
type FilterConfig struct {
	// DefaultMinRating applies when the request has no minimum rating.
	// Default: 3.0.
	DefaultMinRating float64 `json:"default_min_rating" koanf:"default_min_rating"`

	// BudgetTolerance is how many price levels above the profile budget
	// are kept when the request has no explicit budget.
	// Default: 1.
	BudgetTolerance int `json:"budget_tolerance" koanf:"budget_tolerance"`
}

// DiversityConfig contains parameters for category diversity reranking.
type DiversityConfig struct {
	// Enabled controls whether the diversity reranker runs.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// MaxSameCategoryFraction caps the share of one category in the first pass.
	// Default: 0.4.
	MaxSameCategoryFraction float64 `json:"max_same_category_fraction" koanf:"max_same_category_fraction"`

	// CategorySpreadFactor sets the variety reward: scores are multiplied by
	// 1 + CategorySpreadFactor*0.1.
	// Default: 0.3.
	CategorySpreadFactor float64 `json:"category_spread_factor" koanf:"category_spread_factor"`

	// MinCategoryVariety is the number of distinct categories that earns the reward.
	// Default: 3.
	MinCategoryVariety int `json:"min_category_variety" koanf:"min_category_variety"`
}

// PeriodWindow is a time-of-day period with its category boost.
// StartHour is inclusive and EndHour exclusive, both in 0..24.
type PeriodWindow struct {
	Period     models.TimePeriod `json:"period" koanf:"period"`
	StartHour  int               `json:"start_hour" koanf:"start_hour"`
	EndHour    int               `json:"end_hour" koanf:"end_hour"`
	Categories []models.Category `json:"categories" koanf:"categories"`
	Factor     float64           `json:"factor" koanf:"factor"`
}

// Boosts reports whether the window boosts category c.
func (w *PeriodWindow) Boosts(c models.Category) bool {
	for _, cat := range w.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// TimeContextConfig contains the time-of-day periods.
type TimeContextConfig struct {
	// Enabled controls whether the time-context booster runs.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Periods must cover every hour of the day exactly once.
	// Default: morning [6,12), afternoon [12,18), evening [18,24), late night [0,6).
	Periods []PeriodWindow `json:"periods" koanf:"periods"`
}

// WindowAt returns the period window containing the hour of t.
func (c *TimeContextConfig) WindowAt(t time.Time) (PeriodWindow, bool) {
	hour := t.Hour()
	for _, w := range c.Periods {
		if hour >= w.StartHour && hour < w.EndHour {
			return w, true
		}
	}
	return PeriodWindow{}, false
}

// PeriodAt returns the time period containing the hour of t.
func (c *TimeContextConfig) PeriodAt(t time.Time) models.TimePeriod {
	if w, ok := c.WindowAt(t); ok {
		return w.Period
	}
	return models.PeriodLateNight
}

// SafetyConfig contains the safety filter and score adjustment.
type SafetyConfig struct {
	// Enabled controls both the safety filter and the score adjustment.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// MinSafetyRating drops places rated below it.
	// Default: 3.0.
	MinSafetyRating float64 `json:"min_safety_rating" koanf:"min_safety_rating"`

	// Weight scales the adjustment (safety - 3) * Weight * 10.
	// Default: 0.1.
	Weight float64 `json:"weight" koanf:"weight"`
}

// FallbackConfig controls degradation strategies.
type FallbackConfig struct {
	// UseStaticData serves the static place source when the provider fails.
	// Default: true.
	UseStaticData bool `json:"use_static_data" koanf:"use_static_data"`

	// ExpandRadius widens the search when too few places come back.
	// Default: true.
	ExpandRadius bool `json:"expand_radius" koanf:"expand_radius"`

	// RadiusExpansionStep is added to the radius per expansion, in meters.
	// Default: 2000.
	RadiusExpansionStep float64 `json:"radius_expansion_step" koanf:"radius_expansion_step"`

	// MaxExpansions bounds the number of radius expansions.
	// Default: 3.
	MaxExpansions int `json:"max_expansions" koanf:"max_expansions"`

	// RelaxFilters re-runs the filter stage without the request filters
	// when too few candidates survive.
	// Default: true.
	RelaxFilters bool `json:"relax_filters" koanf:"relax_filters"`

	// StaticRadiusFactor multiplies DefaultRadius for the static fallback search.
	// Default: 2.
	StaticRadiusFactor float64 `json:"static_radius_factor" koanf:"static_radius_factor"`

	// StaticMinimum is how many static places are returned when none are nearby.
	// Default: 10.
	StaticMinimum int `json:"static_minimum" koanf:"static_minimum"`
}

// ErrorsConfig controls provider retries.
type ErrorsConfig struct {
	// MaxRetries is the number of retries after a failed provider call.
	// Default: 2.
	MaxRetries int `json:"max_retries" koanf:"max_retries"`

	// RetryDelay is the fixed delay between retries.
	// Default: 1s.
	RetryDelay time.Duration `json:"retry_delay" koanf:"retry_delay"`

	// Timeout bounds a single provider call. Zero disables it.
	// Default: 10s.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`
}

// FeaturesConfig toggles optional behavior.
type FeaturesConfig struct {
	// ExplainRecommendations attaches reasons to scored places.
	// Default: true.
	ExplainRecommendations bool `json:"explain_recommendations" koanf:"explain_recommendations"`

	// TrackHistory records returned place ids in the shown-history set.
	// Default: true.
	TrackHistory bool `json:"track_history" koanf:"track_history"`

	// AvoidRecentlyShown drops places from the shown-history set when at
	// least half of the ranked list survives.
	// Default: true.
	AvoidRecentlyShown bool `json:"avoid_recently_shown" koanf:"avoid_recently_shown"`
}

// DiscoveryConfig contains trending and similar-place parameters.
type DiscoveryConfig struct {
	// TrendingRadius in meters.
	// Default: 10000.
	TrendingRadius float64 `json:"trending_radius" koanf:"trending_radius"`

	// TrendingMinRating drops places rated below it.
	// Default: 4.0.
	TrendingMinRating float64 `json:"trending_min_rating" koanf:"trending_min_rating"`

	// TrendingLimit is the default number of trending places.
	// Default: 10.
	TrendingLimit int `json:"trending_limit" koanf:"trending_limit"`

	// SimilarRadius in meters around the reference place.
	// Default: 3000.
	SimilarRadius float64 `json:"similar_radius" koanf:"similar_radius"`

	// SimilarLimit is the default number of similar places.
	// Default: 5.
	SimilarLimit int `json:"similar_limit" koanf:"similar_limit"`
}

// CacheConfig contains recommendation cache parameters.
type CacheConfig struct {
	// Enabled controls whether results are cached.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// TTL is how long a cached ranking stays valid.
	// Default: 15m.
	TTL time.Duration `json:"ttl" koanf:"ttl"`

	// MaxEntries bounds the number of cached rankings.
	// Default: 1000.
	MaxEntries int `json:"max_entries" koanf:"max_entries"`

	// KeyPrecision is the number of decimals coordinates are rounded to in cache keys.
	// Default: 4.
	KeyPrecision int `json:"key_precision" koanf:"key_precision"`
}

// DefaultPeriods returns the standard four time-of-day windows.
func DefaultPeriods() []PeriodWindow {
	return []PeriodWindow{
		{
			Period:    models.PeriodMorning,
			StartHour: 6, EndHour: 12,
			Categories: []models.Category{
				models.CategoryCafe, models.CategoryRestaurant, models.CategoryPark, models.CategoryMuseum,
			},
			Factor: 1.2,
		},
		{
			Period:    models.PeriodAfternoon,
			StartHour: 12, EndHour: 18,
			Categories: []models.Category{
				models.CategoryRestaurant, models.CategoryMuseum, models.CategoryGallery,
				models.CategoryShop, models.CategoryMarket,
			},
			Factor: 1.2,
		},
		{
			Period:    models.PeriodEvening,
			StartHour: 18, EndHour: 24,
			Categories: []models.Category{
				models.CategoryRestaurant, models.CategoryBar, models.CategoryTheater, models.CategoryCulturalCenter,
			},
			Factor: 1.2,
		},
		{
			Period:     models.PeriodLateNight,
			StartHour:  0,
			EndHour:    6,
			Categories: []models.Category{models.CategoryBar},
			Factor:     1.1,
		},
	}
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Interests:      30,
			Rating:         20,
			Popularity:     10,
			Distance:       10,
			Budget:         10,
			ActivityLevel:  5,
			TravelStyle:    5,
			Dietary:        5,
			TimePreference: 5,
		},
		Search: SearchConfig{
			DefaultRadius: 5000,
			MaxRadius:     20000,
			MinRadius:     1000,
			MaxResults:    20,
			MinResults:    5,
			FetchLimit:    100,
		},
		Filter: FilterConfig{
			DefaultMinRating: 3.0,
			BudgetTolerance:  1,
		},
		Diversity: DiversityConfig{
			Enabled:                 true,
			MaxSameCategoryFraction: 0.4,
			CategorySpreadFactor:    0.3,
			MinCategoryVariety:      3,
		},
		TimeContext: TimeContextConfig{
			Enabled: true,
			Periods: DefaultPeriods(),
		},
		Safety: SafetyConfig{
			Enabled:         true,
			MinSafetyRating: 3.0,
			Weight:          0.1,
		},
		Fallback: FallbackConfig{
			UseStaticData:       true,
			ExpandRadius:        true,
			RadiusExpansionStep: 2000,
			MaxExpansions:       3,
			RelaxFilters:        true,
			StaticRadiusFactor:  2,
			StaticMinimum:       10,
		},
		Errors: ErrorsConfig{
			MaxRetries: 2,
			RetryDelay: time.Second,
			Timeout:    10 * time.Second,
		},
		Features: FeaturesConfig{
			ExplainRecommendations: true,
			TrackHistory:           true,
			AvoidRecentlyShown:     true,
		},
		Discovery: DiscoveryConfig{
			TrendingRadius:    10000,
			TrendingMinRating: 4.0,
			TrendingLimit:     10,
			SimilarRadius:     3000,
			SimilarLimit:      5,
		},
		Cache: CacheConfig{
			Enabled:      true,
			TTL:          15 * time.Minute,
			MaxEntries:   1000,
			KeyPrecision: 4,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if err := c.validateWeights(); err != nil {
		return err
	}

	if c.Search.MinRadius <= 0 {
		return fmt.Errorf("search.min_radius must be positive, got %v", c.Search.MinRadius)
	}
	if c.Search.DefaultRadius < c.Search.MinRadius || c.Search.DefaultRadius > c.Search.MaxRadius {
		return fmt.Errorf("search.default_radius must be within [min_radius, max_radius], got %v", c.Search.DefaultRadius)
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.MinResults < 0 {
		return fmt.Errorf("search.min_results must be non-negative, got %d", c.Search.MinResults)
	}
	if c.Search.FetchLimit < 1 {
		return fmt.Errorf("search.fetch_limit must be positive, got %d", c.Search.FetchLimit)
	}

	if c.Filter.DefaultMinRating < 0 || c.Filter.DefaultMinRating > 5 {
		return fmt.Errorf("filter.default_min_rating must be in [0, 5], got %v", c.Filter.DefaultMinRating)
	}
	if c.Filter.BudgetTolerance < 0 {
		return fmt.Errorf("filter.budget_tolerance must be non-negative, got %d", c.Filter.BudgetTolerance)
	}

	if c.Diversity.MaxSameCategoryFraction <= 0 || c.Diversity.MaxSameCategoryFraction > 1 {
		return fmt.Errorf("diversity.max_same_category_fraction must be in (0, 1], got %v", c.Diversity.MaxSameCategoryFraction)
	}
	if c.Diversity.CategorySpreadFactor < 0 || c.Diversity.CategorySpreadFactor > 1 {
		return fmt.Errorf("diversity.category_spread_factor must be in [0, 1], got %v", c.Diversity.CategorySpreadFactor)
	}
	if c.Diversity.MinCategoryVariety < 0 {
		return fmt.Errorf("diversity.min_category_variety must be non-negative, got %d", c.Diversity.MinCategoryVariety)
	}

	if err := c.validatePeriods(); err != nil {
		return err
	}

	if c.Safety.MinSafetyRating < 0 || c.Safety.MinSafetyRating > 5 {
		return fmt.Errorf("safety.min_safety_rating must be in [0, 5], got %v", c.Safety.MinSafetyRating)
	}
	if c.Safety.Weight < 0 {
		return fmt.Errorf("safety.weight must be non-negative, got %v", c.Safety.Weight)
	}

	if c.Fallback.RadiusExpansionStep <= 0 {
		return fmt.Errorf("fallback.radius_expansion_step must be positive, got %v", c.Fallback.RadiusExpansionStep)
	}
	if c.Fallback.MaxExpansions < 0 {
		return fmt.Errorf("fallback.max_expansions must be non-negative, got %d", c.Fallback.MaxExpansions)
	}
	if c.Fallback.StaticRadiusFactor <= 0 {
		return fmt.Errorf("fallback.static_radius_factor must be positive, got %v", c.Fallback.StaticRadiusFactor)
	}
	if c.Fallback.StaticMinimum < 0 {
		return fmt.Errorf("fallback.static_minimum must be non-negative, got %d", c.Fallback.StaticMinimum)
	}

	if c.Errors.MaxRetries < 0 {
		return fmt.Errorf("errors.max_retries must be non-negative, got %d", c.Errors.MaxRetries)
	}
	if c.Errors.RetryDelay < 0 {
		return fmt.Errorf("errors.retry_delay must be non-negative, got %v", c.Errors.RetryDelay)
	}
	if c.Errors.Timeout < 0 {
		return fmt.Errorf("errors.timeout must be non-negative, got %v", c.Errors.Timeout)
	}

	if c.Discovery.TrendingRadius <= 0 || c.Discovery.SimilarRadius <= 0 {
		return fmt.Errorf("discovery radii must be positive, got %v and %v", c.Discovery.TrendingRadius, c.Discovery.SimilarRadius)
	}
	if c.Discovery.TrendingLimit < 1 || c.Discovery.SimilarLimit < 1 {
		return fmt.Errorf("discovery limits must be positive, got %d and %d", c.Discovery.TrendingLimit, c.Discovery.SimilarLimit)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	if c.Cache.KeyPrecision < 0 || c.Cache.KeyPrecision > 8 {
		return fmt.Errorf("cache.key_precision must be in [0, 8], got %d", c.Cache.KeyPrecision)
	}

	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone %q: %w", c.Timezone, err)
		}
	}

	return nil
}

func (c *Config) validateWeights() error {
	for name, w := range c.Weights.ToMap() {
		if w < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %v", name, w)
		}
	}
	if sum := c.Weights.Sum(); math.Abs(sum-100) > 1e-6 {
		return fmt.Errorf("weights must sum to 100, got %v", sum)
	}
	return nil
}

// validatePeriods checks that the windows cover each hour of the day once.
func (c *Config) validatePeriods() error {
	var covered [24]int
	for _, w := range c.TimeContext.Periods {
		if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
			return fmt.Errorf("time_context period %q has invalid hours [%d, %d)", w.Period, w.StartHour, w.EndHour)
		}
		if w.Factor <= 0 {
			return fmt.Errorf("time_context period %q factor must be positive, got %v", w.Period, w.Factor)
		}
		for h := w.StartHour; h < w.EndHour; h++ {
			covered[h]++
		}
	}
	for h, n := range covered {
		if n != 1 {
			return fmt.Errorf("time_context periods must cover hour %d exactly once, covered %d times", h, n)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.TimeContext.Periods = make([]PeriodWindow, len(c.TimeContext.Periods))
	for i, w := range c.TimeContext.Periods {
		w.Categories = append([]models.Category(nil), w.Categories...)
		clone.TimeContext.Periods[i] = w
	}
	return &clone
}
