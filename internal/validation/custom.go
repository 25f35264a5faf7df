// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package validation

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/sendero/internal/models"
)

var customValidators = map[string]validator.Func{
	"budget_level":   validateBudgetLevel,
	"place_category": validatePlaceCategory,
	"hhmm":           validateClock,
}

// validateBudgetLevel accepts the canonical price levels. Spanish aliases are
// normalized while decoding, so only canonical values reach here.
func validateBudgetLevel(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && models.PriceLevel(s).Valid()
}

func validatePlaceCategory(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && models.Category(s).Valid()
}

// validateClock accepts "HH:MM" between 00:00 and 24:00.
func validateClock(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	if !ok {
		return false
	}
	_, err := models.ParseClock(s)
	return err == nil
}

func stringField(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}
