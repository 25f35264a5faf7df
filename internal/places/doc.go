// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package places provides the places data layer consumed by the recommendation
service.

Providers:
  - StaticSource: embedded Madrid dataset indexed in a spatial hash grid.
    Always loaded; it is the fallback data of the recommendation service.
  - OverpassProvider: OpenStreetMap Overpass API via go-overpass, rate
    limited with golang.org/x/time/rate.
  - PostgresProvider: PostGIS table queried with sqlx and ST_DWithin.

Layers, outermost first:
  - Layered: in-memory LRU of nearby answers keyed by area. A request is
    served from a cached area whose center lies within the reuse distance
    and whose circle covers the requested one.
  - Store: BadgerDB persistence of places and area answers. Fresh areas
    are served directly; expired ones only when upstream fails.
  - BreakerProvider: gobreaker circuit breaker around remote upstreams.

Open assembles the stack from Config:

	layer, err := places.Open(ctx, cfg, logger)
	defer layer.Close()
	svc, err := recommend.NewService(rcfg, layer.Provider, logger,
		recommend.WithFallbackSource(layer.Static))
*/
package places
