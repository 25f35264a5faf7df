// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package config provides centralized configuration management for Sendero.

Configuration is assembled with Koanf v2 in three layers, later layers
overriding earlier ones:

 1. Built-in defaults. Engine sections come from recommend.DefaultConfig,
    route.DefaultConfig and places.DefaultConfig.
 2. An optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths
    that exists.
 3. Environment variables listed in the mapping table. Unmapped variables
    are ignored.

The merged configuration is validated before it is returned, so a Config
from Load is always usable.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_TIMEOUT (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)
  - SWAGGER_ENABLED (default: true)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default: 100 per 1m)
  - DISABLE_RATE_LIMIT (default: false)

Places:
  - PLACES_PROVIDER: static, overpass, postgres (default: static)
  - OVERPASS_ENDPOINT (default: https://overpass-api.de/api/interpreter)
  - POSTGRES_DSN: required when PLACES_PROVIDER=postgres
  - PLACES_STORE_PATH: badger directory, empty for in-memory

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example Config File

	server:
	  port: 8080
	places:
	  provider: overpass
	  overpass:
	    requests_per_second: 0.5
	recommend:
	  weights:
	    interests: 30
	    rating: 20
	    popularity: 10
	    distance: 15
	    budget: 10
	    activity_level: 5
	    travel_style: 5
	    dietary: 3
	    time_preference: 2
*/
package config
