// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package main is the entry point for the Sendero server application.

Sendero recommends places of interest around a traveler and plans walking
routes between them. Places come from the embedded Madrid dataset, the
OpenStreetMap Overpass API or a PostgreSQL table, behind an in-memory cache
and an optional Badger store.

# Application Architecture

	RootSupervisor ("sendero")
	├── DataSupervisor ("data-layer")
	│   ├── Cache janitor
	│   └── Uptime reporter
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Places data layer: provider, circuit breaker, Badger store, memory cache
 4. Recommendation service with diversity and time-of-day rerankers
 5. Route optimizer
 6. HTTP router: chi with CORS, rate limiting, metrics and Swagger
 7. Supervisor tree: suture v4

# Configuration

	# Server
	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Recommendations
	RECOMMEND_TIMEZONE=Europe/Madrid  # zone for open-now and time-of-day rules

	# Places
	PLACES_PROVIDER=static       # static, overpass or postgres
	OVERPASS_ENDPOINT=https://overpass-api.de/api/interpreter
	PLACES_STORE_ENABLED=true
	PLACES_STORE_PATH=/data/places

	# Security
	CORS_ORIGINS=https://example.com
	RATE_LIMIT_REQUESTS=100
	TRUSTED_PROXIES=10.0.0.0/8

See the config package for the complete list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT, then the places store
and database connections are closed.
*/
package main
