// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/sendero/internal/config"
	"github.com/tomtom215/sendero/internal/places"
	"github.com/tomtom215/sendero/internal/recommend"
	"github.com/tomtom215/sendero/internal/recommend/reranking"
	"github.com/tomtom215/sendero/internal/route"
)

// planningComponents holds the recommendation service and route optimizer.
type planningComponents struct {
	Recommender *recommend.Service
	Optimizer   *route.Optimizer
}

// initPlanning builds the recommendation service over the places layer and
// the route optimizer. The embedded dataset serves as recommendation
// fallback whatever the configured provider.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initPlanning(cfg *config.Config, layer *places.DataLayer, logger zerolog.Logger) (*planningComponents, error) {
	logger.Info().
		Bool("cache", cfg.Recommend.Cache.Enabled).
		Bool("explain", cfg.Recommend.Features.ExplainRecommendations).
		Bool("track_history", cfg.Recommend.Features.TrackHistory).
		Msg("Initializing recommendation service")

	recommender, err := recommend.NewService(&cfg.Recommend, layer.Provider, logger,
		recommend.WithFallbackSource(layer.Static),
	)
	if err != nil {
		return nil, fmt.Errorf("create recommendation service: %w", err)
	}
	registerRerankers(recommender, cfg, logger)

	optimizer, err := route.NewOptimizer(&cfg.Route, logger)
	if err != nil {
		return nil, fmt.Errorf("create route optimizer: %w", err)
	}

	return &planningComponents{Recommender: recommender, Optimizer: optimizer}, nil
}

// registerRerankers installs diversity before the time-of-day boost, so
// the boost reorders an already varied list.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func registerRerankers(svc *recommend.Service, cfg *config.Config, logger zerolog.Logger) {
	svc.RegisterReranker(reranking.NewCategoryDiversity(cfg.Recommend.Diversity))
	svc.RegisterReranker(reranking.NewTimeContext(cfg.Recommend.TimeContext))

	logger.Debug().
		Bool("diversity", cfg.Recommend.Diversity.Enabled).
		Bool("time_context", cfg.Recommend.TimeContext.Enabled).
		Msg("Rerankers registered")
}
