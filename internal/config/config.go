// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/sendero/internal/places"
	"github.com/tomtom215/sendero/internal/recommend"
	"github.com/tomtom215/sendero/internal/route"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Configuration Categories:
//
//  1. Engine:
//     - Recommend: weights, thresholds, fallback and cache of the scoring engine
//     - Route: travel speed and stop limits of the route optimizer
//
//  2. Data:
//     - Places: provider selection (static, overpass, postgres), the badger
//     store and the nearby cache in front of the provider
//
//  3. Runtime:
//     - Server: HTTP server settings
//     - Security: CORS and rate limiting
//     - Supervisor: restart policy and cache janitor interval
//     - Logging: log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	svc, err := recommend.NewService(&cfg.Recommend, provider, logger)
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
	Recommend  recommend.Config `koanf:"recommend"`
	Route      route.Config     `koanf:"route"`
	Places     places.Config    `koanf:"places"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// SwaggerEnabled serves the API documentation at /swagger/.
	// Default: true
	SwaggerEnabled bool `koanf:"swagger_enabled"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// SupervisorConfig holds the restart policy of the suture tree and the
// interval of the cache janitor.
//
// Environment Variables:
//   - SUPERVISOR_FAILURE_THRESHOLD: failures before backoff (default: 5)
//   - SUPERVISOR_FAILURE_BACKOFF: backoff duration (default: 15s)
//   - SUPERVISOR_SHUTDOWN_TIMEOUT: per-service stop timeout (default: 10s)
//   - CACHE_JANITOR_INTERVAL: how often expired cache entries are evicted (default: 5m)
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
	JanitorInterval  time.Duration `koanf:"janitor_interval"`
}

// Load reads configuration using the Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
