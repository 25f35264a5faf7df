// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package models

// Interest is a traveller interest that maps onto place categories.
type Interest string

// Supported interests.
const (
	InterestGastronomy Interest = "gastronomy"
	InterestCulture    Interest = "culture"
	InterestNature     Interest = "nature"
	InterestAdventure  Interest = "adventure"
	InterestNightlife  Interest = "nightlife"
	InterestShopping   Interest = "shopping"
	InterestHistory    Interest = "history"
	InterestArt        Interest = "art"
	InterestSports     Interest = "sports"
	InterestRelaxation Interest = "relaxation"
)

// TravelStyle describes who the traveller is travelling with.
type TravelStyle string

// Travel styles.
const (
	TravelSolo    TravelStyle = "solo"
	TravelCouple  TravelStyle = "couple"
	TravelFamily  TravelStyle = "family"
	TravelFriends TravelStyle = "friends"
	TravelGroup   TravelStyle = "group"
)

// ActivityLevel describes how physically demanding the traveller wants the day to be.
type ActivityLevel string

// Activity levels.
const (
	ActivityRelaxed  ActivityLevel = "relaxed"
	ActivityModerate ActivityLevel = "moderate"
	ActivityActive   ActivityLevel = "active"
	ActivityIntense  ActivityLevel = "intense"
)

// DietaryPreference is a dietary restriction matched against place tags.
type DietaryPreference string

// Dietary preferences. DietaryNone disables dietary scoring.
const (
	DietaryNone        DietaryPreference = "none"
	DietaryVegetarian  DietaryPreference = "vegetarian"
	DietaryVegan       DietaryPreference = "vegan"
	DietaryGlutenFree  DietaryPreference = "gluten_free"
	DietaryHalal       DietaryPreference = "halal"
	DietaryKosher      DietaryPreference = "kosher"
	DietaryLactoseFree DietaryPreference = "lactose_free"
)

// TimePeriod is a coarse part of the day derived from the wall-clock hour.
type TimePeriod string

// Time periods.
const (
	PeriodMorning   TimePeriod = "morning"
	PeriodAfternoon TimePeriod = "afternoon"
	PeriodEvening   TimePeriod = "evening"
	PeriodLateNight TimePeriod = "late_night"
)

// DefaultMaxDistanceKm is used when a profile carries no travel distance limit.
const DefaultMaxDistanceKm = 10.0

// UserProfile holds the stated preferences of the person asking for recommendations.
type UserProfile struct {
	Interests           []Interest          `json:"interests" validate:"max=20"`
	PreferredBudget     PriceLevel          `json:"preferred_budget" validate:"omitempty,budget_level"`
	TravelStyle         TravelStyle         `json:"travel_style,omitempty"`
	ActivityLevel       ActivityLevel       `json:"activity_level,omitempty"`
	DietaryPreferences  []DietaryPreference `json:"dietary_preferences,omitempty"`
	PreferredTimes      []TimePeriod        `json:"preferred_times,omitempty"`
	MaxTravelDistanceKm float64             `json:"max_travel_distance,omitempty" validate:"gte=0,lte=500"`
	Language            string              `json:"language,omitempty" validate:"omitempty,max=8"`
}

// DefaultProfile is substituted when no profile is available: no interests,
// medium budget and Spanish as the display language.
func DefaultProfile() UserProfile {
	return UserProfile{
		Interests:       []Interest{},
		PreferredBudget: PriceMedium,
		Language:        "es",
	}
}

// Budget returns the preferred budget, defaulting to medium when unset or unknown.
func (p *UserProfile) Budget() PriceLevel {
	if !p.PreferredBudget.Valid() {
		return PriceMedium
	}
	return p.PreferredBudget
}

// MaxDistanceMeters returns the travel distance limit in meters.
func (p *UserProfile) MaxDistanceMeters() float64 {
	km := p.MaxTravelDistanceKm
	if km <= 0 {
		km = DefaultMaxDistanceKm
	}
	return km * 1000
}

// PrefersTime reports whether period is among the preferred times.
func (p *UserProfile) PrefersTime(period TimePeriod) bool {
	for _, t := range p.PreferredTimes {
		if t == period {
			return true
		}
	}
	return false
}

// SameInterests reports whether both profiles list the same interests in the same order.
func (p *UserProfile) SameInterests(other *UserProfile) bool {
	if len(p.Interests) != len(other.Interests) {
		return false
	}
	for i := range p.Interests {
		if p.Interests[i] != other.Interests[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the profile.
func (p *UserProfile) Clone() UserProfile {
	c := *p
	c.Interests = append([]Interest(nil), p.Interests...)
	c.DietaryPreferences = append([]DietaryPreference(nil), p.DietaryPreferences...)
	c.PreferredTimes = append([]TimePeriod(nil), p.PreferredTimes...)
	return c
}

// Filters are optional hard constraints supplied with a recommendation request.
type Filters struct {
	Categories  []Category  `json:"categories,omitempty" validate:"omitempty,dive,place_category"`
	BudgetLevel *PriceLevel `json:"budget_level,omitempty" validate:"omitempty,budget_level"`
	MinRating   *float64    `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	OpenNow     bool        `json:"open_now,omitempty"`
	MaxDistance *float64    `json:"max_distance,omitempty" validate:"omitempty,gt=0"`
}
