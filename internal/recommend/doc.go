// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package recommend implements the personalized place recommendation engine.
//
// # Architecture
//
// A request flows through a fixed pipeline owned by Service:
//
//	cache lookup -> fetch (radius expansion, retries) -> Filter -> Scorer
//	  -> rerankers (diversity, time of day) -> sort -> shown history -> truncate
//
// When the places provider keeps failing, or returns nothing, the service
// ranks a static fallback list instead of returning an error. Only a missing
// or invalid location is reported to the caller.
//
// # Scoring
//
// Scorer combines nine sub-scores in [0, 1] with configurable weights that
// sum to 100:
//
//   - interests: category and tag matches against profile interests
//   - rating and popularity (review count)
//   - distance: linear decay to the profile travel limit
//   - budget: ordinal distance between price levels
//   - activity level, travel style, dietary needs, preferred time of day
//
// An explicit safety rating shifts the sum by (safety - 3) * weight * 10 before
// the result is clamped to [0, 100].
//
// # Configuration
//
// Every threshold lives in Config. DefaultConfig returns production values and
// Validate rejects inconsistent settings such as weights that do not sum to 100
// or time-of-day periods that overlap.
//
// # Rerankers
//
// Rerankers live in the reranking subpackage and are registered with
// Service.RegisterReranker. The request time is carried in the context
// (WithRequestTime) so that scoring and reranking agree on the time of day.
//
// # Thread Safety
//
// Scorer and Filter are stateless. Service guards its cache and shown-history
// set and is safe for concurrent requests.
package recommend
