// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package route

import (
	"fmt"
	"math"
)

// FormatDuration renders minutes as "1 h 30 min", dropping a zero component.
func FormatDuration(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := int(math.Floor(minutes / 60))
	mins := int(math.Round(math.Mod(minutes, 60)))
	if mins == 60 {
		hours++
		mins = 0
	}

	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", mins)
	case mins == 0:
		return fmt.Sprintf("%d h", hours)
	default:
		return fmt.Sprintf("%d h %d min", hours, mins)
	}
}
