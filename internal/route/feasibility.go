// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package route

import (
	"fmt"

	"github.com/tomtom215/sendero/internal/models"
)

// IsRouteFeasible checks each stop's arrival against its opening hours.
// Stops without hours never conflict. Arrival must fall on a listed weekday
// within [open, close], both ends included.
func IsRouteFeasible(r *models.Route) models.Feasibility {
	conflicts := []string{}
	if r != nil {
		for i := range r.Places {
			if conflict, ok := stopConflict(&r.Places[i]); ok {
				conflicts = append(conflicts, conflict)
			}
		}
	}
	return models.Feasibility{
		Feasible:  len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

func stopConflict(stop *models.RoutePlace) (string, bool) {
	p := &stop.Place
	if !p.HasOpeningHours() {
		return "", false
	}

	arrival := stop.ArrivalTime
	hours, ok := p.OpeningHours.For(arrival.Weekday())
	if !ok {
		return fmt.Sprintf("%s is closed that day", p.Name), true
	}
	if !hours.Contains(models.MinuteOfDay(arrival), true) {
		return fmt.Sprintf("%s will be closed at the estimated arrival time (%s)",
			p.Name, models.FormatClock(arrival)), true
	}
	return "", false
}
