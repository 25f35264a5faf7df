// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"fmt"
	"time"
)

// Provider kinds accepted by Config.Provider.
const (
	ProviderStatic   = "static"
	ProviderOverpass = "overpass"
	ProviderPostgres = "postgres"
)

// Config selects and tunes the places data layer.
type Config struct {
	// Provider is the upstream source: static, overpass or postgres.
	// Default: static.
	Provider string `json:"provider" koanf:"provider"`

	Overpass OverpassConfig    `json:"overpass" koanf:"overpass"`
	Postgres PostgresConfig    `json:"postgres" koanf:"postgres"`
	Store    StoreConfig       `json:"store" koanf:"store"`
	Nearby   NearbyCacheConfig `json:"nearby" koanf:"nearby"`
	Breaker  BreakerConfig     `json:"breaker" koanf:"breaker"`
}

// OverpassConfig configures the OpenStreetMap Overpass provider.
type OverpassConfig struct {
	// Endpoint is the Overpass interpreter URL.
	// Default: https://overpass-api.de/api/interpreter.
	Endpoint string `json:"endpoint" koanf:"endpoint"`

	// Timeout bounds a single query.
	// Default: 25s.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`

	// RequestsPerSecond limits queries to the public endpoint.
	// Default: 1.
	RequestsPerSecond float64 `json:"requests_per_second" koanf:"requests_per_second"`

	// Burst is the limiter burst size.
	// Default: 2.
	Burst int `json:"burst" koanf:"burst"`

	// MaxParallel bounds concurrent HTTP requests of the client.
	// Default: 2.
	MaxParallel int `json:"max_parallel" koanf:"max_parallel"`
}

// PostgresConfig configures the PostGIS provider.
type PostgresConfig struct {
	// DSN is the lib/pq connection string.
	DSN string `json:"-" koanf:"dsn"`

	// MaxOpenConns bounds the connection pool.
	// Default: 10.
	MaxOpenConns int `json:"max_open_conns" koanf:"max_open_conns"`

	// Migrate creates the schema on startup.
	// Default: true.
	Migrate bool `json:"migrate" koanf:"migrate"`
}

// StoreConfig configures the BadgerDB place store.
type StoreConfig struct {
	// Enabled turns on the persistent store layer.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Path is the database directory. Empty means in-memory.
	// Default: ./data/places.
	Path string `json:"path" koanf:"path"`

	// FreshFor is how long stored nearby results are served without asking upstream.
	// Default: 24h.
	FreshFor time.Duration `json:"fresh_for" koanf:"fresh_for"`

	// RetainFor is how long stored data survives, serving as stale fallback
	// when upstream fails.
	// Default: 168h.
	RetainFor time.Duration `json:"retain_for" koanf:"retain_for"`
}

// NearbyCacheConfig configures the in-memory nearby-results cache.
type NearbyCacheConfig struct {
	// Capacity bounds the number of cached areas.
	// Default: 256.
	Capacity int `json:"capacity" koanf:"capacity"`

	// TTL is the lifetime of a cached area.
	// Default: 24h.
	TTL time.Duration `json:"ttl" koanf:"ttl"`

	// ReuseDistance is how far, in meters, a request may be from a cached
	// area center and still be served from it.
	// Default: 1000.
	ReuseDistance float64 `json:"reuse_distance" koanf:"reuse_distance"`
}

// BreakerConfig configures the upstream circuit breaker.
type BreakerConfig struct {
	// Enabled wraps the upstream provider in a circuit breaker.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// MaxRequests is the number of trial requests in half-open state.
	// Default: 3.
	MaxRequests uint32 `json:"max_requests" koanf:"max_requests"`

	// Interval resets failure counts in closed state.
	// Default: 1m.
	Interval time.Duration `json:"interval" koanf:"interval"`

	// Timeout is the open-state duration before a trial.
	// Default: 2m.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`

	// MinRequests is the request count before the failure ratio is considered.
	// Default: 10.
	MinRequests uint32 `json:"min_requests" koanf:"min_requests"`

	// FailureRatio opens the circuit when reached.
	// Default: 0.6.
	FailureRatio float64 `json:"failure_ratio" koanf:"failure_ratio"`
}

// DefaultConfig returns the data layer defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderStatic,
		Overpass: OverpassConfig{
			Endpoint:          "https://overpass-api.de/api/interpreter",
			Timeout:           25 * time.Second,
			RequestsPerSecond: 1,
			Burst:             2,
			MaxParallel:       2,
		},
		Postgres: PostgresConfig{
			MaxOpenConns: 10,
			Migrate:      true,
		},
		Store: StoreConfig{
			Enabled:   true,
			Path:      "./data/places",
			FreshFor:  24 * time.Hour,
			RetainFor: 7 * 24 * time.Hour,
		},
		Nearby: NearbyCacheConfig{
			Capacity:      256,
			TTL:           24 * time.Hour,
			ReuseDistance: 1000,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

// Validate checks the configuration.
//
//nolint:gocyclo // flat list of independent checks
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderStatic:
	case ProviderOverpass:
		if c.Overpass.Endpoint == "" {
			return fmt.Errorf("places.overpass.endpoint is required for the overpass provider")
		}
		if c.Overpass.Timeout <= 0 {
			return fmt.Errorf("places.overpass.timeout must be positive")
		}
		if c.Overpass.RequestsPerSecond <= 0 {
			return fmt.Errorf("places.overpass.requests_per_second must be positive")
		}
		if c.Overpass.Burst < 1 || c.Overpass.MaxParallel < 1 {
			return fmt.Errorf("places.overpass.burst and max_parallel must be at least 1")
		}
	case ProviderPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("places.postgres.dsn is required for the postgres provider")
		}
		if c.Postgres.MaxOpenConns < 1 {
			return fmt.Errorf("places.postgres.max_open_conns must be at least 1")
		}
	default:
		return fmt.Errorf("places.provider must be one of static, overpass, postgres; got %q", c.Provider)
	}

	if c.Store.Enabled {
		if c.Store.FreshFor <= 0 {
			return fmt.Errorf("places.store.fresh_for must be positive")
		}
		if c.Store.RetainFor < c.Store.FreshFor {
			return fmt.Errorf("places.store.retain_for must be at least fresh_for")
		}
	}
	if c.Nearby.Capacity < 1 {
		return fmt.Errorf("places.nearby.capacity must be at least 1")
	}
	if c.Nearby.TTL <= 0 {
		return fmt.Errorf("places.nearby.ttl must be positive")
	}
	if c.Nearby.ReuseDistance < 0 {
		return fmt.Errorf("places.nearby.reuse_distance must be non-negative")
	}
	if c.Breaker.Enabled {
		if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
			return fmt.Errorf("places.breaker.failure_ratio must be in (0, 1]")
		}
		if c.Breaker.Timeout <= 0 {
			return fmt.Errorf("places.breaker.timeout must be positive")
		}
	}
	return nil
}
