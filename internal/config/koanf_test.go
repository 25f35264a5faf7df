// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/sendero/internal/places"
)

// isolateEnv moves the test into an empty directory and points CONFIG_PATH
// at a file that does not exist, so neither a stray config file nor a
// developer's CONFIG_PATH leaks into the load.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "absent.yaml"))
	return dir
}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sendero.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100", cfg.Security.RateLimitReqs)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Supervisor.JanitorInterval != 5*time.Minute {
		t.Errorf("Supervisor.JanitorInterval = %v, want 5m", cfg.Supervisor.JanitorInterval)
	}
	if got := cfg.Recommend.Weights.Sum(); got != 100 {
		t.Errorf("Recommend.Weights.Sum() = %v, want 100", got)
	}
	if cfg.Recommend.Timezone != DefaultTimezone {
		t.Errorf("Recommend.Timezone = %q, want %q", cfg.Recommend.Timezone, DefaultTimezone)
	}
	if cfg.Route.AverageSpeedKmh != 30 {
		t.Errorf("Route.AverageSpeedKmh = %v, want 30", cfg.Route.AverageSpeedKmh)
	}
	if cfg.Places.Provider != places.ProviderStatic {
		t.Errorf("Places.Provider = %q, want %q", cfg.Places.Provider, places.ProviderStatic)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"CACHE_JANITOR_INTERVAL", "supervisor.janitor_interval"},
		{"RECOMMEND_CACHE_TTL", "recommend.cache.ttl"},
		{"RECOMMEND_MIN_RATING", "recommend.filter.default_min_rating"},
		{"ROUTE_AVERAGE_SPEED_KMH", "route.average_speed_kmh"},
		{"PLACES_PROVIDER", "places.provider"},
		{"POSTGRES_DSN", "places.postgres.dsn"},
		{"OVERPASS_ENDPOINT", "places.overpass.endpoint"},
		{"log_level", "logging.level"},

		// Unmapped variables are skipped
		{"PATH", ""},
		{"HOME", ""},
		{"RECOMMEND_WEIGHTS", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEnvMappingsTargetKnownKeys checks every mapped key against the defaults
// so a renamed field cannot silently orphan its environment variable.
func TestEnvMappingsTargetKnownKeys(t *testing.T) {
	k := GetKoanfInstance()
	if err := loadDefaults(k); err != nil {
		t.Fatalf("loadDefaults() error = %v", err)
	}

	for env, key := range envMappings {
		if !k.Exists(key) {
			t.Errorf("%s maps to unknown key %q", strings.ToUpper(env), key)
		}
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: {}"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(filepath.Join(dir, "config.yaml"))

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := writeConfigFile(t, dir, "server: {}")
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECOMMEND_CACHE_TTL", "30m")
	t.Setenv("RECOMMEND_MIN_RATING", "3.5")
	t.Setenv("RECOMMEND_TIMEZONE", "America/Bogota")
	t.Setenv("ROUTE_MAX_STOPS", "12")
	t.Setenv("PLACES_STORE_PATH", "")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if got := cfg.Security.CORSOrigins; len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v, want [https://a.example https://b.example]", got)
	}
	if cfg.Recommend.Cache.TTL != 30*time.Minute {
		t.Errorf("Recommend.Cache.TTL = %v, want 30m", cfg.Recommend.Cache.TTL)
	}
	if cfg.Recommend.Filter.DefaultMinRating != 3.5 {
		t.Errorf("Recommend.Filter.DefaultMinRating = %v, want 3.5", cfg.Recommend.Filter.DefaultMinRating)
	}
	if cfg.Recommend.Timezone != "America/Bogota" {
		t.Errorf("Recommend.Timezone = %q, want America/Bogota", cfg.Recommend.Timezone)
	}
	if cfg.Route.MaxStops != 12 {
		t.Errorf("Route.MaxStops = %d, want 12", cfg.Route.MaxStops)
	}
	if cfg.Places.Store.Path != "" {
		t.Errorf("Places.Store.Path = %q, want empty", cfg.Places.Store.Path)
	}

	// Defaults survive for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if len(cfg.Recommend.TimeContext.Periods) != 4 {
		t.Errorf("Recommend.TimeContext.Periods has %d windows, want 4 (default)", len(cfg.Recommend.TimeContext.Periods))
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	configPath := writeConfigFile(t, dir, `
server:
  port: 8888
  host: "127.0.0.1"

logging:
  level: "warn"

recommend:
  weights:
    interests: 25
    distance: 15

places:
  provider: overpass
  overpass:
    endpoint: "https://overpass.example.org/api/interpreter"
    requests_per_second: 0.5
`)
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Recommend.Weights.Interests != 25 || cfg.Recommend.Weights.Distance != 15 {
		t.Errorf("Recommend.Weights = %+v, want interests 25 and distance 15", cfg.Recommend.Weights)
	}
	if cfg.Recommend.Weights.Rating != 20 {
		t.Errorf("Recommend.Weights.Rating = %v, want 20 (default)", cfg.Recommend.Weights.Rating)
	}
	if cfg.Places.Provider != places.ProviderOverpass {
		t.Errorf("Places.Provider = %q, want overpass", cfg.Places.Provider)
	}
	if cfg.Places.Overpass.RequestsPerSecond != 0.5 {
		t.Errorf("Places.Overpass.RequestsPerSecond = %v, want 0.5", cfg.Places.Overpass.RequestsPerSecond)
	}
	if cfg.Places.Overpass.Timeout != 25*time.Second {
		t.Errorf("Places.Overpass.Timeout = %v, want 25s (default)", cfg.Places.Overpass.Timeout)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	dir := isolateEnv(t)

	configPath := writeConfigFile(t, dir, `
server:
  port: 8888
logging:
  level: "warn"
`)
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env overrides file)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

// TestLoadWithKoanfValidation tests that invalid merged configuration is rejected
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		wantErr string
	}{
		{
			name:    "invalid port",
			env:     map[string]string{"HTTP_PORT": "70000"},
			wantErr: "HTTP_PORT",
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "postgres without dsn",
			env:     map[string]string{"PLACES_PROVIDER": "postgres"},
			wantErr: "places.postgres.dsn",
		},
		{
			name:    "overpass endpoint without scheme",
			env:     map[string]string{"PLACES_PROVIDER": "overpass", "OVERPASS_ENDPOINT": "overpass.example.org"},
			wantErr: "OVERPASS_ENDPOINT",
		},
		{
			name:    "weights not summing to 100",
			file:    "recommend:\n  weights:\n    interests: 90\n",
			wantErr: "recommend:",
		},
		{
			name:    "zero average speed",
			env:     map[string]string{"ROUTE_AVERAGE_SPEED_KMH": "0"},
			wantErr: "route.average_speed_kmh",
		},
		{
			name:    "rate limit window too small",
			env:     map[string]string{"RATE_LIMIT_WINDOW": "10ms"},
			wantErr: "RATE_LIMIT_WINDOW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateEnv(t)
			if tt.file != "" {
				t.Setenv(ConfigPathEnvVar, writeConfigFile(t, dir, tt.file))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("LoadWithKoanf() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadWithKoanf() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
