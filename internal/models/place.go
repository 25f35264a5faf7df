// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultSafetyRating is assumed for places that carry no safety rating.
const DefaultSafetyRating = 4.0

// DefaultVisitMinutes is assumed for places that carry no average visit duration.
const DefaultVisitMinutes = 60

// Category is the kind of point of interest.
type Category string

// Place categories.
const (
	CategoryRestaurant     Category = "restaurant"
	CategoryMuseum         Category = "museum"
	CategoryPark           Category = "park"
	CategoryMonument       Category = "monument"
	CategoryBar            Category = "bar"
	CategoryCafe           Category = "cafe"
	CategoryShop           Category = "shop"
	CategoryGallery        Category = "gallery"
	CategoryTheater        Category = "theater"
	CategoryPlaza          Category = "plaza"
	CategoryMarket         Category = "market"
	CategoryViewpoint      Category = "viewpoint"
	CategoryChurch         Category = "church"
	CategoryCulturalCenter Category = "cultural_center"
)

// AllCategories lists every supported category in declaration order.
var AllCategories = []Category{
	CategoryRestaurant, CategoryMuseum, CategoryPark, CategoryMonument,
	CategoryBar, CategoryCafe, CategoryShop, CategoryGallery, CategoryTheater,
	CategoryPlaza, CategoryMarket, CategoryViewpoint, CategoryChurch,
	CategoryCulturalCenter,
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IsFoodAndDrink reports whether dietary preferences are meaningful for c.
func (c Category) IsFoodAndDrink() bool {
	switch c {
	case CategoryRestaurant, CategoryCafe, CategoryBar, CategoryMarket:
		return true
	default:
		return false
	}
}

// PriceLevel is an ordinal price tier: low < medium < high < premium.
type PriceLevel string

// Price levels, cheapest first.
const (
	PriceLow     PriceLevel = "low"
	PriceMedium  PriceLevel = "medium"
	PriceHigh    PriceLevel = "high"
	PricePremium PriceLevel = "premium"
)

var priceOrdinals = map[PriceLevel]int{
	PriceLow:     0,
	PriceMedium:  1,
	PriceHigh:    2,
	PricePremium: 3,
}

// Ordinal returns the position of p on the price scale, or -1 if p is unknown.
func (p PriceLevel) Ordinal() int {
	if ord, ok := priceOrdinals[p]; ok {
		return ord
	}
	return -1
}

// Valid reports whether p is a known price level.
func (p PriceLevel) Valid() bool {
	return p.Ordinal() >= 0
}

// PriceLevelFromOrdinal returns the price level at ord, clamped to the scale.
func PriceLevelFromOrdinal(ord int) PriceLevel {
	switch {
	case ord <= 0:
		return PriceLow
	case ord == 1:
		return PriceMedium
	case ord == 2:
		return PriceHigh
	default:
		return PricePremium
	}
}

// ParsePriceLevel parses a price level, accepting the Spanish tier names
// used by older clients (bajo, medio, alto, premium).
func ParsePriceLevel(s string) (PriceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "bajo":
		return PriceLow, nil
	case "medium", "medio":
		return PriceMedium, nil
	case "high", "alto":
		return PriceHigh, nil
	case "premium":
		return PricePremium, nil
	default:
		return "", fmt.Errorf("unknown price level %q", s)
	}
}

// Location is a geographic coordinate, optionally with accuracy and timestamp.
type Location struct {
	Latitude  float64    `json:"latitude" validate:"latitude"`
	Longitude float64    `json:"longitude" validate:"longitude"`
	Accuracy  *float64   `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Place is a point of interest. Places are treated as immutable values once
// they leave a provider.
type Place struct {
	ID                   string       `json:"id" validate:"required"`
	Name                 string       `json:"name"`
	Description          string       `json:"description,omitempty"`
	Category             Category     `json:"category" validate:"omitempty,place_category"`
	Latitude             float64      `json:"latitude" validate:"latitude"`
	Longitude            float64      `json:"longitude" validate:"longitude"`
	Address              string       `json:"address,omitempty"`
	PriceLevel           PriceLevel   `json:"price_level" validate:"omitempty,budget_level"`
	Rating               float64      `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount          int          `json:"review_count" validate:"gte=0"`
	Tags                 []string     `json:"tags,omitempty"`
	OpeningHours         OpeningHours `json:"opening_hours,omitempty" validate:"omitempty,dive"`
	SafetyRating         *float64     `json:"safety_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	AverageVisitDuration int          `json:"average_visit_duration,omitempty" validate:"gte=0"`
	Website              string       `json:"website,omitempty"`
	Phone                string       `json:"phone,omitempty"`
	Verified             bool         `json:"is_verified"`
	UpdatedAt            time.Time    `json:"updated_at,omitempty"`
}

// Location returns the coordinate of the place.
func (p *Place) Location() Location {
	return Location{Latitude: p.Latitude, Longitude: p.Longitude}
}

// Safety returns the safety rating, or DefaultSafetyRating when unset.
func (p *Place) Safety() float64 {
	if p.SafetyRating == nil {
		return DefaultSafetyRating
	}
	return *p.SafetyRating
}

// VisitMinutes returns the average visit duration, or DefaultVisitMinutes when unset.
func (p *Place) VisitMinutes() int {
	if p.AverageVisitDuration <= 0 {
		return DefaultVisitMinutes
	}
	return p.AverageVisitDuration
}

// HasOpeningHours reports whether any weekday has hours defined.
func (p *Place) HasOpeningHours() bool {
	return len(p.OpeningHours) > 0
}

// HasTagContaining reports whether any tag contains needle, case-insensitively.
func (p *Place) HasTagContaining(needle string) bool {
	needle = strings.ToLower(needle)
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// CountTagsContaining counts the tags containing needle, case-insensitively.
func (p *Place) CountTagsContaining(needle string) int {
	needle = strings.ToLower(needle)
	n := 0
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			n++
		}
	}
	return n
}

// Float64Ptr returns a pointer to v. Handy for optional ratings in fixtures.
func Float64Ptr(v float64) *float64 {
	return &v
}
