// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package reranking implements post-scoring adjustments of recommendation lists.
//
// Rerankers operate on already-scored places and reorder, drop or rescale them:
//
//	Filter -> Score -> Rerankers -> Sort -> History -> Truncate
//
// # Available Rerankers
//
//   - CategoryDiversity: caps the share of one category and rewards variety
//   - TimeContext: boosts categories suited to the current time of day
//
// Both implement recommend.Reranker and are registered on the service in
// this order:
//
//	svc.RegisterReranker(reranking.NewCategoryDiversity(cfg.Diversity))
//	svc.RegisterReranker(reranking.NewTimeContext(cfg.TimeContext))
//
// # Thread Safety
//
// Rerankers hold only configuration and are safe for concurrent use.
package reranking
