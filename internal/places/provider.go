// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"sort"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/models"
)

var (
	// ErrPlaceNotFound is returned when no place has the requested id.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrProviderUnavailable is returned when the upstream source cannot be reached
	// and no cached data can stand in.
	ErrProviderUnavailable = errors.New("places provider unavailable")
)

// Provider supplies places near a location and by id.
type Provider interface {
	// FetchNearby returns verified places within radiusMeters of location,
	// at most limit of them. Zero results is not an error.
	FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error)

	// FetchByID returns one place or an error wrapping ErrPlaceNotFound.
	FetchByID(ctx context.Context, id string) (*models.Place, error)
}

// Pinger is implemented by providers that can report upstream health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// withinRadius keeps verified places within radiusMeters of location,
// nearest first, truncated to limit when limit is positive.
func withinRadius(candidates []models.Place, location models.Location, radiusMeters float64, limit int) []models.Place {
	type ranked struct {
		place    models.Place
		distance float64
	}

	kept := make([]ranked, 0, len(candidates))
	for i := range candidates {
		if !candidates[i].Verified {
			continue
		}
		d := geo.PlaceDistance(location, &candidates[i])
		if d <= radiusMeters {
			kept = append(kept, ranked{place: candidates[i], distance: d})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].distance < kept[j].distance
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	out := make([]models.Place, len(kept))
	for i := range kept {
		out[i] = kept[i].place
	}
	return out
}
