// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/sendero/internal/cache"
	"github.com/tomtom215/sendero/internal/metrics"
	"github.com/tomtom215/sendero/internal/models"
)

const nearbyCacheType = "places_nearby"

// nearbyEntry is a cached upstream answer for one area.
type nearbyEntry struct {
	center models.Location
	radius float64
	places []models.Place
	// complete is false when upstream hit the request limit, so the entry
	// may lack places and only serves requests for the same area.
	complete bool
}

// LayeredStats reports where nearby requests were answered.
type LayeredStats struct {
	MemoryHits    int64 `json:"memory_hits"`
	StoreHits     int64 `json:"store_hits"`
	UpstreamCalls int64 `json:"upstream_calls"`
	StaleServed   int64 `json:"stale_served"`
	CachedAreas   int   `json:"cached_areas"`
}

// Layered answers place queries from an in-memory area cache, then the
// persistent store, then the upstream provider. Upstream answers are written
// through to both layers. When upstream fails, expired store content is
// served if present.
type Layered struct {
	upstream     Provider
	upstreamName string
	store        *Store
	nearbyCfg    NearbyCacheConfig
	freshFor     time.Duration
	nearby       *cache.LRUCache[nearbyEntry]
	centers      *cache.SpatialHashGrid[struct{}]
	now          func() time.Time
	logger       zerolog.Logger

	memoryHits    atomic.Int64
	storeHits     atomic.Int64
	upstreamCalls atomic.Int64
	staleServed   atomic.Int64
}

// LayeredOption configures a Layered provider.
type LayeredOption func(*Layered)

// WithStore adds a persistent store layer.
func WithStore(store *Store, freshFor time.Duration) LayeredOption {
	return func(l *Layered) {
		l.store = store
		l.freshFor = freshFor
	}
}

// WithLayeredClock sets the time source.
func WithLayeredClock(now func() time.Time) LayeredOption {
	return func(l *Layered) {
		l.now = now
	}
}

// NewLayered wraps upstream, which is reported in metrics as name.
func NewLayered(name string, upstream Provider, cfg NearbyCacheConfig, logger zerolog.Logger, opts ...LayeredOption) *Layered {
	l := &Layered{
		upstream:     upstream,
		upstreamName: name,
		nearbyCfg:    cfg,
		nearby:       cache.NewLRUCache[nearbyEntry](cfg.Capacity, cfg.TTL),
		centers:      cache.NewSpatialHashGrid[struct{}](cfg.ReuseDistance),
		now:          time.Now,
		logger:       logger.With().Str("component", "places").Str("provider", name).Logger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.nearby.SetClock(l.now)
	return l
}

// FetchNearby returns places within radiusMeters of location.
func (l *Layered) FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error) {
	if list, ok := l.fromMemory(location, radiusMeters, limit); ok {
		l.memoryHits.Add(1)
		metrics.RecordCacheLookup(nearbyCacheType, true)
		return list, nil
	}
	metrics.RecordCacheLookup(nearbyCacheType, false)

	key := areaKey(location, radiusMeters, limit)

	var (
		stale    []models.Place
		hasStale bool
	)
	if l.store != nil {
		list, storedAt, ok, err := l.store.GetArea(ctx, key)
		switch {
		case err != nil:
			l.logger.Warn().Err(err).Str("area", key).Msg("Place store read failed")
		case ok && l.now().Sub(storedAt) < l.freshFor:
			l.storeHits.Add(1)
			l.remember(key, location, radiusMeters, limit, list)
			return withinRadius(list, location, radiusMeters, limit), nil
		case ok:
			stale, hasStale = list, true
		}
	}

	l.upstreamCalls.Add(1)
	started := time.Now()
	list, err := l.upstream.FetchNearby(ctx, location, radiusMeters, limit)
	metrics.RecordProviderFetch(l.upstreamName, time.Since(started), len(list), err)

	if err != nil {
		if hasStale {
			l.staleServed.Add(1)
			l.logger.Warn().Err(err).Str("area", key).Int("places", len(stale)).Msg("Upstream failed, serving stored places")
			return withinRadius(stale, location, radiusMeters, limit), nil
		}
		if errors.Is(err, ErrProviderUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	l.remember(key, location, radiusMeters, limit, list)
	if l.store != nil {
		if err := l.store.PutArea(ctx, key, location, radiusMeters, list, l.now()); err != nil {
			l.logger.Warn().Err(err).Str("area", key).Msg("Place store write failed")
		}
	}
	return list, nil
}

// fromMemory serves a request from a cached area whose circle covers the
// requested one.
func (l *Layered) fromMemory(location models.Location, radiusMeters float64, limit int) ([]models.Place, bool) {
	key := areaKey(location, radiusMeters, limit)
	for _, n := range l.centers.QueryNearby(location.Latitude, location.Longitude, l.nearbyCfg.ReuseDistance) {
		entry, ok := l.nearby.Get(n.ID)
		if !ok {
			l.centers.Remove(n.ID)
			continue
		}
		covers := entry.complete && entry.radius >= radiusMeters+n.DistanceMeters
		if n.ID == key || covers {
			return withinRadius(entry.places, location, radiusMeters, limit), true
		}
	}
	return nil, false
}

func (l *Layered) remember(key string, location models.Location, radiusMeters float64, limit int, list []models.Place) {
	l.nearby.Add(key, nearbyEntry{
		center:   location,
		radius:   radiusMeters,
		places:   append([]models.Place(nil), list...),
		complete: limit <= 0 || len(list) < limit,
	})
	l.centers.Insert(key, location.Latitude, location.Longitude, struct{}{})
	metrics.CacheSize.WithLabelValues(nearbyCacheType).Set(float64(l.nearby.Len()))
}

// FetchByID returns a stored place or asks upstream and stores the answer.
func (l *Layered) FetchByID(ctx context.Context, id string) (*models.Place, error) {
	if l.store != nil {
		place, err := l.store.GetPlace(ctx, id)
		if err == nil {
			return place, nil
		}
		if !errors.Is(err, ErrPlaceNotFound) {
			l.logger.Warn().Err(err).Str("place_id", id).Msg("Place store read failed")
		}
	}

	place, err := l.upstream.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPlaceNotFound) || errors.Is(err, ErrProviderUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if l.store != nil {
		if err := l.store.PutPlaces(ctx, []models.Place{*place}); err != nil {
			l.logger.Warn().Err(err).Str("place_id", id).Msg("Place store write failed")
		}
	}
	return place, nil
}

// CleanupExpired drops expired cached areas and returns how many were removed.
func (l *Layered) CleanupExpired() int {
	removed := l.nearby.CleanupExpired()
	for _, id := range l.centers.IDs() {
		if !l.nearby.Contains(id) {
			l.centers.Remove(id)
		}
	}
	metrics.RecordCacheEvictions(nearbyCacheType, removed)
	metrics.CacheSize.WithLabelValues(nearbyCacheType).Set(float64(l.nearby.Len()))

	if l.store != nil {
		if err := l.store.RunGC(); err != nil {
			l.logger.Warn().Err(err).Msg("Place store garbage collection failed")
		}
	}
	return removed
}

// Ping reports upstream health when upstream supports it.
func (l *Layered) Ping(ctx context.Context) error {
	if p, ok := l.upstream.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Stats returns layer counters.
func (l *Layered) Stats() LayeredStats {
	return LayeredStats{
		MemoryHits:    l.memoryHits.Load(),
		StoreHits:     l.storeHits.Load(),
		UpstreamCalls: l.upstreamCalls.Load(),
		StaleServed:   l.staleServed.Load(),
		CachedAreas:   l.nearby.Len(),
	}
}

// areaKey identifies a nearby query. Coordinates are rounded to about 10 m.
func areaKey(location models.Location, radiusMeters float64, limit int) string {
	return fmt.Sprintf("%.4f,%.4f,%.0f,%d", location.Latitude, location.Longitude, radiusMeters, limit)
}
