// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DataLayer is the assembled places stack.
type DataLayer struct {
	// Provider answers place queries through the cache layers.
	Provider *Layered
	// Static is the embedded dataset, used as recommendation fallback.
	Static *StaticSource

	closers []func() error
}

// Close releases the store and database connections.
func (d *DataLayer) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open builds the data layer described by cfg.
func Open(ctx context.Context, cfg *Config, logger zerolog.Logger) (*DataLayer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid places config: %w", err)
	}

	static, err := NewStaticSource()
	if err != nil {
		return nil, err
	}
	layer := &DataLayer{Static: static}

	var upstream Provider
	switch cfg.Provider {
	case ProviderOverpass:
		upstream = NewOverpassProvider(cfg.Overpass, logger)
	case ProviderPostgres:
		pg, err := NewPostgresProvider(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		layer.closers = append(layer.closers, pg.Close)
		upstream = pg
	default:
		upstream = static
	}

	if cfg.Breaker.Enabled && cfg.Provider != ProviderStatic {
		upstream = NewBreakerProvider(cfg.Provider+"-places", upstream, cfg.Breaker, logger)
	}

	var opts []LayeredOption
	if cfg.Store.Enabled {
		store, err := OpenStore(cfg.Store, logger)
		if err != nil {
			_ = layer.Close()
			return nil, err
		}
		layer.closers = append(layer.closers, store.Close)
		opts = append(opts, WithStore(store, cfg.Store.FreshFor))
	}

	layer.Provider = NewLayered(cfg.Provider, upstream, cfg.Nearby, logger, opts...)
	logger.Info().
		Str("provider", cfg.Provider).
		Bool("store", cfg.Store.Enabled).
		Bool("breaker", cfg.Breaker.Enabled && cfg.Provider != ProviderStatic).
		Int("static_places", static.Len()).
		Msg("Places data layer ready")
	return layer, nil
}
