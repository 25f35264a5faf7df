// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package api provides the HTTP REST API layer for Sendero.

It exposes the recommendation service, the place discovery helpers and the
route optimizer over JSON, using chi for routing and the standard response
envelope from the models package.

Key Components:

  - Router: chi route configuration and the global middleware stack
  - Handler: request handlers for every endpoint
  - ChiMiddleware: CORS, trusted-proxy RealIP and per-IP rate limiting
  - Response formatting: success and error envelopes with metadata and ETags
  - Validation: request bodies and queries go through the validation package

Endpoints:

1. Health (/api/v1/health/):
  - live, ready (ready pings every registered ReadinessChecker)

2. Recommendations (/api/v1/recommendations/):
  - POST / ranked places for a location, profile and filters
  - POST /explain the same ranking with scores and explanations
  - DELETE /cache, GET /stats

3. Places (/api/v1/places/):
  - nearby, trending, {id}, {id}/similar, {id}/open

4. Routes (/api/v1/routes/):
  - POST /optimize orders stops and reports opening-hour conflicts

Usage Example:

	handler := api.NewHandler(recommender, optimizer, logger,
	    api.WithReadinessCheck("places", layer.Provider),
	    api.WithPlacesStats(layer.Provider),
	)
	mw := api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security))
	router := api.NewRouter(handler, mw, cfg.Server.SwaggerEnabled)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Setup()}

Error Handling:

Errors use a fixed set of codes (BAD_REQUEST, VALIDATION_ERROR,
LOCATION_REQUIRED, NOT_FOUND, TOO_MANY_REQUESTS, SERVICE_UNAVAILABLE,
INTERNAL_ERROR). Domain errors from recommend, route and places are mapped in
respondDomainError; internal details are logged, never returned.
*/
package api
