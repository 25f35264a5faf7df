// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package route

import "errors"

var (
	// ErrTooManyStops is returned when a route exceeds Config.MaxStops.
	ErrTooManyStops = errors.New("too many stops")

	// ErrInvalidStart is returned when the start location is out of range.
	ErrInvalidStart = errors.New("invalid start location")
)
