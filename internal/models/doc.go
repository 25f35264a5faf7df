// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package models defines the data structures shared by the Sendero engine,
its place providers and the HTTP API.

Domain Models:

  - Place: a point of interest with category, price level, rating, tags,
    optional weekly opening hours and an optional safety rating
  - Location: a coordinate used as scoring origin and route start
  - UserProfile: interests, budget, travel style, activity level, dietary
    preferences and preferred times of day
  - Filters: optional hard constraints for a recommendation request
  - Route, RoutePlace, Feasibility: an ordered itinerary and its check
    against opening hours

API Models:

  - APIResponse, Metadata, APIError: the response envelope
  - RecommendationRequest, RouteRequest, RouteResponse: request and response bodies

Places are values. Nothing in the engine mutates a Place once a provider has
returned it, so slices of places may be shared between goroutines.

Usage Example:

	import "github.com/tomtom215/sendero/internal/models"

	place := models.Place{
	    ID:         "prado",
	    Name:       "Museo del Prado",
	    Category:   models.CategoryMuseum,
	    PriceLevel: models.PriceMedium,
	    Rating:     4.8,
	    OpeningHours: models.OpeningHours{
	        "monday": {Open: "10:00", Close: "20:00"},
	    },
	}
	open := place.OpeningHours // nil means no hours are known
*/
package models
