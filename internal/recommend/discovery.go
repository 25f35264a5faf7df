// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/models"
)

// Nearby returns provider places within radiusMeters of location, nearest first.
func (s *Service) Nearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error) {
	if !geo.ValidCoordinate(location.Latitude, location.Longitude) {
		return nil, ErrInvalidLocation
	}
	if radiusMeters <= 0 {
		radiusMeters = s.config.Search.DefaultRadius
	}
	radiusMeters = math.Min(radiusMeters, s.config.Search.MaxRadius)
	if limit <= 0 {
		limit = s.config.Search.FetchLimit
	}

	places, err := s.fetchOnce(ctx, location, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("fetch nearby places: %w", err)
	}

	sort.SliceStable(places, func(i, j int) bool {
		return geo.PlaceDistance(location, &places[i]) < geo.PlaceDistance(location, &places[j])
	})
	if len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}

// Place returns one place by id.
func (s *Service) Place(ctx context.Context, id string) (*models.Place, error) {
	return s.provider.FetchByID(ctx, id)
}

// Trending returns well-rated places near location ranked by
// rating * ln(reviews + 1). When the provider fails or finds nothing, the
// first static places are returned instead.
func (s *Service) Trending(ctx context.Context, location models.Location, limit int) []models.Place {
	disc := s.config.Discovery
	if limit <= 0 {
		limit = disc.TrendingLimit
	}

	nearby, err := s.fetchOnce(ctx, location, disc.TrendingRadius)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Trending fetch failed, serving static places")
		return s.staticHead(limit)
	}
	if len(nearby) == 0 {
		return s.staticHead(limit)
	}

	trending := make([]models.Place, 0, len(nearby))
	for _, p := range nearby {
		if p.Rating >= disc.TrendingMinRating {
			trending = append(trending, p)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trendingScore(&trending[i]) > trendingScore(&trending[j])
	})

	if len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}

func trendingScore(p *models.Place) float64 {
	return p.Rating * math.Log(float64(p.ReviewCount)+1)
}

// Similar returns places of the same category and price level within the
// similar-place radius of the reference, best rated first. The reference
// itself is excluded.
func (s *Service) Similar(ctx context.Context, ref *models.Place, limit int) ([]models.Place, error) {
	disc := s.config.Discovery
	if limit <= 0 {
		limit = disc.SimilarLimit
	}

	nearby, err := s.fetchOnce(ctx, ref.Location(), disc.SimilarRadius)
	if err != nil {
		return nil, fmt.Errorf("fetch places near %s: %w", ref.ID, err)
	}

	similar := make([]models.Place, 0, len(nearby))
	for _, p := range nearby {
		if p.ID != ref.ID && p.Category == ref.Category && p.PriceLevel == ref.PriceLevel {
			similar = append(similar, p)
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Rating > similar[j].Rating
	})

	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar, nil
}

// SimilarByID looks up the reference place and returns Similar for it.
func (s *Service) SimilarByID(ctx context.Context, id string, limit int) ([]models.Place, error) {
	ref, err := s.provider.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Similar(ctx, ref, limit)
}

func (s *Service) staticHead(limit int) []models.Place {
	if s.fallback == nil {
		return []models.Place{}
	}
	all := s.fallback.All()
	n := min(limit, len(all))
	return append([]models.Place(nil), all[:n]...)
}
