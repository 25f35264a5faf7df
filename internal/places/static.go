// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/sendero/internal/cache"
	"github.com/tomtom215/sendero/internal/models"
)

//go:embed data/madrid.json
var madridPlaces []byte

// staticCellMeters sizes the spatial index cells of the static dataset.
const staticCellMeters = 500

// StaticSource serves a fixed, read-only list of places. It is the fallback
// data of the recommendation service and a provider for offline use.
type StaticSource struct {
	places []models.Place
	byID   map[string]int
	index  *cache.SpatialHashGrid[int]
}

// NewStaticSource loads the embedded Madrid dataset.
func NewStaticSource() (*StaticSource, error) {
	var list []models.Place
	if err := json.Unmarshal(madridPlaces, &list); err != nil {
		return nil, fmt.Errorf("decode embedded places: %w", err)
	}
	return NewStaticSourceFromPlaces(list), nil
}

// NewStaticSourceFromPlaces indexes list. The list order is kept by All.
func NewStaticSourceFromPlaces(list []models.Place) *StaticSource {
	s := &StaticSource{
		places: append([]models.Place(nil), list...),
		byID:   make(map[string]int, len(list)),
		index:  cache.NewSpatialHashGrid[int](staticCellMeters),
	}
	for i := range s.places {
		p := &s.places[i]
		s.byID[p.ID] = i
		s.index.Insert(p.ID, p.Latitude, p.Longitude, i)
	}
	return s
}

// All returns a copy of every place in dataset order.
func (s *StaticSource) All() []models.Place {
	return append([]models.Place(nil), s.places...)
}

// Len returns the number of places.
func (s *StaticSource) Len() int {
	return len(s.places)
}

// FetchNearby returns verified places within radiusMeters, nearest first.
func (s *StaticSource) FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	neighbors := s.index.QueryNearby(location.Latitude, location.Longitude, radiusMeters)
	out := make([]models.Place, 0, len(neighbors))
	for _, n := range neighbors {
		p := s.places[n.Data]
		if !p.Verified {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// FetchByID returns the place with id.
func (s *StaticSource) FetchByID(_ context.Context, id string) (*models.Place, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
	}
	p := s.places[i]
	return &p, nil
}
