// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package supervisor provides process supervision for Sendero using suture v4.

The tree restarts crashed services with backoff and shuts everything down in
order when the root context is canceled.

# Overview

	RootSupervisor ("sendero")
	├── DataSupervisor ("data-layer")
	│   ├── JanitorService (recommendation and nearby cache eviction)
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events are logged through sutureslog, backed by the zerolog slog
adapter from the logging package. Every restarting termination also
increments supervisor_service_restarts_total{service}.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewSlogLogger(logging.Logger()),
	    supervisor.TreeConfigFromConfig(cfg.Supervisor),
	)
	if err != nil {
	    return err
	}
	tree.AddDataService(janitor)
	tree.AddAPIService(httpService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

Services live in the services subpackage.
*/
package supervisor
