// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpiringCache drops entries whose TTL has passed and reports how many.
// Satisfied by *recommend.Service and *places.Layered.
type ExpiringCache interface {
	CleanupExpired() int
}

// JanitorService periodically evicts expired entries from the in-memory
// caches. Expired entries are never served, so the janitor only bounds
// memory between requests.
type JanitorService struct {
	caches   map[string]ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewJanitorService sweeps every cache in caches once per interval. A
// non-positive interval means five minutes.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewJanitorService(caches map[string]ExpiringCache, interval time.Duration, logger zerolog.Logger) *JanitorService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &JanitorService{
		caches:   caches,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (j *JanitorService) Serve(ctx context.Context) error {
	j.logger.Debug().Dur("interval", j.interval).Int("caches", len(j.caches)).Msg("cache janitor starting")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep runs one eviction pass over every cache and returns the total
// number of entries removed.
func (j *JanitorService) Sweep() int {
	total := 0
	for name, c := range j.caches {
		n := c.CleanupExpired()
		if n > 0 {
			j.logger.Debug().Str("cache", name).Int("removed", n).Msg("Expired cache entries evicted")
		}
		total += n
	}
	return total
}

// String names the service in supervisor events.
func (j *JanitorService) String() string {
	return j.name
}
