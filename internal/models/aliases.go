// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package models

import "strings"

// Legacy clients and the original places database use Spanish identifiers.
// Decoding normalizes them to the canonical English values; unknown values
// are kept lowercased so validation can report them.

var categoryAliases = map[string]Category{
	"restaurante":     CategoryRestaurant,
	"museo":           CategoryMuseum,
	"parque":          CategoryPark,
	"monumento":       CategoryMonument,
	"tienda":          CategoryShop,
	"galeria":         CategoryGallery,
	"teatro":          CategoryTheater,
	"mercado":         CategoryMarket,
	"mirador":         CategoryViewpoint,
	"iglesia":         CategoryChurch,
	"centro_cultural": CategoryCulturalCenter,
}

var interestAliases = map[string]Interest{
	"gastronomia":   InterestGastronomy,
	"cultura":       InterestCulture,
	"naturaleza":    InterestNature,
	"aventura":      InterestAdventure,
	"vida_nocturna": InterestNightlife,
	"compras":       InterestShopping,
	"historia":      InterestHistory,
	"arte":          InterestArt,
	"deportes":      InterestSports,
	"relax":         InterestRelaxation,
}

var travelStyleAliases = map[string]TravelStyle{
	"pareja":  TravelCouple,
	"familia": TravelFamily,
	"amigos":  TravelFriends,
	"grupo":   TravelGroup,
}

var activityAliases = map[string]ActivityLevel{
	"relajado": ActivityRelaxed,
	"moderado": ActivityModerate,
	"activo":   ActivityActive,
	"intenso":  ActivityIntense,
}

var dietaryAliases = map[string]DietaryPreference{
	"ninguna":      DietaryNone,
	"vegetariano":  DietaryVegetarian,
	"vegano":       DietaryVegan,
	"sin_gluten":   DietaryGlutenFree,
	"sin_lactosa":  DietaryLactoseFree,
	"gluten-free":  DietaryGlutenFree,
	"lactose-free": DietaryLactoseFree,
}

func normalize(b []byte) string {
	return strings.ToLower(strings.TrimSpace(string(b)))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	s := normalize(b)
	if alias, ok := categoryAliases[s]; ok {
		*c = alias
		return nil
	}
	*c = Category(s)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PriceLevel) UnmarshalText(b []byte) error {
	if level, err := ParsePriceLevel(string(b)); err == nil {
		*p = level
		return nil
	}
	*p = PriceLevel(normalize(b))
	return nil
}

// Canonical returns the English interest for a possibly Spanish one.
func (i Interest) Canonical() Interest {
	s := strings.ToLower(strings.TrimSpace(string(i)))
	if alias, ok := interestAliases[s]; ok {
		return alias
	}
	return Interest(s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interest) UnmarshalText(b []byte) error {
	*i = Interest(string(b)).Canonical()
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TravelStyle) UnmarshalText(b []byte) error {
	v := normalize(b)
	if alias, ok := travelStyleAliases[v]; ok {
		*s = alias
		return nil
	}
	*s = TravelStyle(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ActivityLevel) UnmarshalText(b []byte) error {
	v := normalize(b)
	if alias, ok := activityAliases[v]; ok {
		*a = alias
		return nil
	}
	*a = ActivityLevel(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DietaryPreference) UnmarshalText(b []byte) error {
	v := normalize(b)
	if alias, ok := dietaryAliases[v]; ok {
		*d = alias
		return nil
	}
	*d = DietaryPreference(v)
	return nil
}
