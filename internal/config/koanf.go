// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database for recommend.timezone

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/sendero/internal/places"
	"github.com/tomtom215/sendero/internal/recommend"
	"github.com/tomtom215/sendero/internal/route"
)

// DefaultConfigPaths lists the locations searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/sendero/config.yaml",
	"/etc/sendero/config.yml",
}

// ConfigPathEnvVar names the environment variable that points at a config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultTimezone is the zone of the embedded Madrid dataset. Requests
// without a timezone are evaluated in it.
const DefaultTimezone = "Europe/Madrid"

func defaultRecommendConfig() recommend.Config {
	cfg := *recommend.DefaultConfig()
	cfg.Timezone = DefaultTimezone
	return cfg
}

// defaultConfig returns the configuration used before the file and the
// environment are applied. Engine sections come from their packages.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			Environment:     "development",
			ShutdownTimeout: 10 * time.Second,
			SwaggerEnabled:  true,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
			JanitorInterval:  5 * time.Minute,
		},
		Recommend: defaultRecommendConfig(),
		Route:     *route.DefaultConfig(),
		Places:    *places.DefaultConfig(),
	}
}

// LoadWithKoanf loads configuration from defaults, the config file and the
// environment, then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}
	return nil
}

// findConfigFile returns the CONFIG_PATH file when it exists, otherwise the
// first default path that exists, otherwise "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are keys whose environment values are comma-separated lists.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config keys.
var envMappings = map[string]string{
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",
	"swagger_enabled":       "server.swagger_enabled",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
	"cache_janitor_interval":       "supervisor.janitor_interval",

	"recommend_default_radius":    "recommend.search.default_radius",
	"recommend_max_radius":        "recommend.search.max_radius",
	"recommend_max_results":       "recommend.search.max_results",
	"recommend_min_results":       "recommend.search.min_results",
	"recommend_fetch_limit":       "recommend.search.fetch_limit",
	"recommend_min_rating":        "recommend.filter.default_min_rating",
	"recommend_diversity_enabled": "recommend.diversity.enabled",
	"recommend_time_context":      "recommend.time_context.enabled",
	"recommend_safety_enabled":    "recommend.safety.enabled",
	"recommend_min_safety_rating": "recommend.safety.min_safety_rating",
	"recommend_use_static_data":   "recommend.fallback.use_static_data",
	"recommend_expand_radius":     "recommend.fallback.expand_radius",
	"recommend_max_retries":       "recommend.errors.max_retries",
	"recommend_retry_delay":       "recommend.errors.retry_delay",
	"recommend_provider_timeout":  "recommend.errors.timeout",
	"recommend_explain":           "recommend.features.explain_recommendations",
	"recommend_track_history":     "recommend.features.track_history",
	"recommend_avoid_recent":      "recommend.features.avoid_recently_shown",
	"recommend_cache_enabled":     "recommend.cache.enabled",
	"recommend_cache_ttl":         "recommend.cache.ttl",
	"recommend_cache_max_entries": "recommend.cache.max_entries",
	"recommend_trending_radius":   "recommend.discovery.trending_radius",
	"recommend_similar_radius":    "recommend.discovery.similar_radius",
	"recommend_timezone":          "recommend.timezone",

	"route_average_speed_kmh":     "route.average_speed_kmh",
	"route_default_visit_minutes": "route.default_visit_minutes",
	"route_max_stops":             "route.max_stops",
	"route_max_passes":            "route.max_improvement_passes",

	"places_provider":              "places.provider",
	"overpass_endpoint":            "places.overpass.endpoint",
	"overpass_timeout":             "places.overpass.timeout",
	"overpass_requests_per_second": "places.overpass.requests_per_second",
	"overpass_burst":               "places.overpass.burst",
	"postgres_dsn":                 "places.postgres.dsn",
	"postgres_max_open_conns":      "places.postgres.max_open_conns",
	"postgres_migrate":             "places.postgres.migrate",
	"places_store_enabled":         "places.store.enabled",
	"places_store_path":            "places.store.path",
	"places_store_fresh_for":       "places.store.fresh_for",
	"places_store_retain_for":      "places.store.retain_for",
	"places_nearby_capacity":       "places.nearby.capacity",
	"places_nearby_ttl":            "places.nearby.ttl",
	"places_nearby_reuse_distance": "places.nearby.reuse_distance",
	"places_breaker_enabled":       "places.breaker.enabled",
	"places_breaker_timeout":       "places.breaker.timeout",
	"places_breaker_failure_ratio": "places.breaker.failure_ratio",
}

func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped variables are skipped so the process environment cannot
	// inject arbitrary keys.
	return ""
}

// GetKoanfInstance returns a new Koanf instance for advanced usage.
func GetKoanfInstance() *koanf.Koanf {
	return koanf.New(".")
}
