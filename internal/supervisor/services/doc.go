// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package services provides suture.Service wrappers for Sendero components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and names itself through fmt.Stringer so supervisor events and the
supervisor_service_restarts_total metric identify it.

# Available Services

HTTP Server (HTTPServerService):
  - Runs *http.Server and shuts it down gracefully on cancellation
  - http.ErrServerClosed is treated as a clean stop

Cache Janitor (JanitorService):
  - Calls CleanupExpired on the recommendation cache and the nearby-places
    cache on a fixed interval

Uptime (UptimeService):
  - Sets app_info once and refreshes app_uptime_seconds

# Example

	tree.AddDataService(services.NewJanitorService(map[string]services.ExpiringCache{
	    "recommendations": recommender,
	    "nearby":          layer.Provider,
	}, cfg.Supervisor.JanitorInterval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Supervisor.ShutdownTimeout, logger))
*/
package services
