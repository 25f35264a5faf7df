// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"strings"

	"github.com/tomtom215/sendero/internal/models"
)

// categorySet is an immutable set of categories.
type categorySet map[models.Category]struct{}

func newCategorySet(cats ...models.Category) categorySet {
	s := make(categorySet, len(cats))
	for _, c := range cats {
		s[c] = struct{}{}
	}
	return s
}

func (s categorySet) has(c models.Category) bool {
	_, ok := s[c]
	return ok
}

// interestCategories maps each interest to the categories that satisfy it.
var interestCategories = map[models.Interest]categorySet{
	models.InterestGastronomy: newCategorySet(models.CategoryRestaurant, models.CategoryCafe, models.CategoryMarket),
	models.InterestCulture: newCategorySet(models.CategoryMuseum, models.CategoryGallery,
		models.CategoryCulturalCenter, models.CategoryTheater),
	models.InterestNature:     newCategorySet(models.CategoryPark, models.CategoryViewpoint),
	models.InterestAdventure:  newCategorySet(models.CategoryPark, models.CategoryViewpoint),
	models.InterestNightlife:  newCategorySet(models.CategoryBar),
	models.InterestShopping:   newCategorySet(models.CategoryShop, models.CategoryMarket),
	models.InterestHistory:    newCategorySet(models.CategoryMuseum, models.CategoryMonument, models.CategoryChurch),
	models.InterestArt:        newCategorySet(models.CategoryGallery, models.CategoryMuseum, models.CategoryTheater),
	models.InterestSports:     newCategorySet(models.CategoryPark),
	models.InterestRelaxation: newCategorySet(models.CategoryPark, models.CategoryCafe, models.CategoryViewpoint),
}

// interestTagNames are the names a tag may contain to count toward an interest.
var interestTagNames = map[models.Interest][]string{
	models.InterestGastronomy: {"gastronomy", "gastronomia"},
	models.InterestCulture:    {"culture", "cultura"},
	models.InterestNature:     {"nature", "naturaleza"},
	models.InterestAdventure:  {"adventure", "aventura"},
	models.InterestNightlife:  {"nightlife", "vida_nocturna"},
	models.InterestShopping:   {"shopping", "compras"},
	models.InterestHistory:    {"history", "historia"},
	models.InterestArt:        {"art", "arte"},
	models.InterestSports:     {"sports", "deportes"},
	models.InterestRelaxation: {"relaxation", "relax"},
}

// activityCategories maps an activity level to the categories that fit it.
var activityCategories = map[models.ActivityLevel]categorySet{
	models.ActivityRelaxed: newCategorySet(models.CategoryCafe, models.CategoryRestaurant,
		models.CategoryMuseum, models.CategoryGallery),
	models.ActivityModerate: newCategorySet(models.CategoryPark, models.CategoryMarket,
		models.CategoryCulturalCenter, models.CategoryShop, models.CategoryViewpoint),
	models.ActivityActive:  newCategorySet(models.CategoryPark, models.CategoryViewpoint),
	models.ActivityIntense: newCategorySet(models.CategoryPark, models.CategoryViewpoint),
}

// travelStyleKeywords are tag substrings that suit a travel style.
var travelStyleKeywords = map[models.TravelStyle][]string{
	models.TravelSolo:    {"tranquilo", "quiet", "individual", "trabajo", "wifi"},
	models.TravelCouple:  {"romantico", "romantic", "pareja", "cena", "intimo", "intimate"},
	models.TravelFamily:  {"familia", "family", "ninos", "kids", "playground"},
	models.TravelFriends: {"grupo", "social", "diversion", "bar"},
	models.TravelGroup:   {"grupos", "groups", "eventos", "events", "capacidad", "reservas"},
}

// dietaryKeywords are tag substrings that satisfy a dietary preference.
var dietaryKeywords = map[models.DietaryPreference][]string{
	models.DietaryVegetarian:  {"vegetariano", "veggie", "vegetarian"},
	models.DietaryVegan:       {"vegano", "vegan", "plant-based"},
	models.DietaryGlutenFree:  {"sin gluten", "gluten-free", "celiac"},
	models.DietaryHalal:       {"halal"},
	models.DietaryKosher:      {"kosher"},
	models.DietaryLactoseFree: {"sin lactosa", "lactose-free", "dairy-free"},
}

// InterestCategories returns the categories that satisfy an interest.
func InterestCategories(i models.Interest) []models.Category {
	set := interestCategories[i.Canonical()]
	out := make([]models.Category, 0, len(set))
	for _, c := range models.AllCategories {
		if set.has(c) {
			out = append(out, c)
		}
	}
	return out
}

// anyTagContains reports whether any tag of p contains any keyword.
func anyTagContains(p *models.Place, keywords []string) bool {
	for _, kw := range keywords {
		if p.HasTagContaining(kw) {
			return true
		}
	}
	return false
}

// countTagsContainingAny counts the tags of p that contain at least one keyword.
func countTagsContainingAny(p *models.Place, keywords []string) int {
	n := 0
	for _, tag := range p.Tags {
		tag = strings.ToLower(tag)
		for _, kw := range keywords {
			if strings.Contains(tag, strings.ToLower(kw)) {
				n++
				break
			}
		}
	}
	return n
}
