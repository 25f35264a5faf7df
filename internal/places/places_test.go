// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/models"
)

// sol is Puerta del Sol, Madrid.
var sol = models.Location{Latitude: 40.4168, Longitude: -3.7038}

var errUpstream = errors.New("upstream down")

func fixturePlace(id string, cat models.Category, northM, eastM float64) models.Place {
	loc := geo.Offset(sol, northM, eastM)
	return models.Place{
		ID:         id,
		Name:       id,
		Category:   cat,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		PriceLevel: models.PriceMedium,
		Rating:     4.2,
		Verified:   true,
	}
}

// fixturePlaces are five places north of Sol, 200 m apart.
func fixturePlaces() []models.Place {
	out := make([]models.Place, 5)
	for i := range out {
		out[i] = fixturePlace(fmt.Sprintf("p%d", i), models.CategoryMuseum, float64(i+1)*200, 0)
	}
	return out
}

// countingProvider serves a static list and counts upstream calls.
type countingProvider struct {
	mu          sync.Mutex
	src         *StaticSource
	nearbyCalls int
	byIDCalls   int
	fail        bool
}

func newCountingProvider(list []models.Place) *countingProvider {
	return &countingProvider{src: NewStaticSourceFromPlaces(list)}
}

func (c *countingProvider) setFail(fail bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = fail
}

func (c *countingProvider) calls() (nearby, byID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nearbyCalls, c.byIDCalls
}

func (c *countingProvider) FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error) {
	c.mu.Lock()
	c.nearbyCalls++
	fail := c.fail
	c.mu.Unlock()
	if fail {
		return nil, errUpstream
	}
	return c.src.FetchNearby(ctx, location, radiusMeters, limit)
}

func (c *countingProvider) FetchByID(ctx context.Context, id string) (*models.Place, error) {
	c.mu.Lock()
	c.byIDCalls++
	fail := c.fail
	c.mu.Unlock()
	if fail {
		return nil, errUpstream
	}
	return c.src.FetchByID(ctx, id)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func placeIDs(list []models.Place) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = list[i].ID
	}
	return out
}
