// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created on first use with
// WithRequiredStructEnabled, the domain validators below and a tag name
// function that reports fields by their json names. Request types in
// internal/models carry the validate tags; handlers call ValidateStruct after
// decoding and answer with ToAPIError on failure.
//
// # Domain Tags
//
//   - budget_level: one of low, medium, high, premium
//   - place_category: one of models.AllCategories
//   - hhmm: a time of day "HH:MM" between 00:00 and 24:00
//
// Built-in tags used by the request types include required, latitude,
// longitude, gte/lte, max and dive.
//
// # Error Format
//
// Field paths are json paths relative to the validated struct:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "filters.categories[1] must be a known place category",
//	    "details": {"field": "filters.categories[1]", "tag": "place_category", "value": "casino"}
//	}
//
// With several failures the message joins them with "; " and details carry a
// "fields" list.
package validation
