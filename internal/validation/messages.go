// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// errorMessageTemplates maps validation tags to message templates that only
// need the field name.
var errorMessageTemplates = map[string]string{
	"required":       "%s is required",
	"latitude":       "%s must be a valid latitude (-90 to 90)",
	"longitude":      "%s must be a valid longitude (-180 to 180)",
	"budget_level":   "%s must be one of: low medium high premium",
	"place_category": "%s must be a known place category",
	"hhmm":           "%s must be a time of day in HH:MM format",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError, field string) string {
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max with messages that depend on the kind:
// characters for strings, items for collections.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	verb, unit := "be", ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		verb, unit = "have", " items"
	}

	switch tag {
	case "min":
		return fmt.Sprintf("%s must %s at least %s%s", field, verb, param, unit)
	case "max":
		return fmt.Sprintf("%s must %s at most %s%s", field, verb, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
