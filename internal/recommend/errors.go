// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import "errors"

var (
	// ErrLocationRequired is returned when a request has no location.
	// Callers should ask the user to enable location rather than fall back.
	ErrLocationRequired = errors.New("location required")

	// ErrInvalidLocation is returned for coordinates outside the valid range.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidTimezone is returned when a request names an unknown IANA zone.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrNoProvider is returned by operations that need a places provider when none is set.
	ErrNoProvider = errors.New("places provider not set")
)
