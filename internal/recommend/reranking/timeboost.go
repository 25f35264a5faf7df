// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package reranking

import (
	"context"

	"github.com/tomtom215/sendero/internal/recommend"
)

// TimeContext multiplies the score of places whose category suits the
// current time of day. The time is taken from recommend.RequestTime so that
// every stage of a request agrees on it.
type TimeContext struct {
	config recommend.TimeContextConfig
}

// NewTimeContext creates a time-of-day booster.
func NewTimeContext(cfg recommend.TimeContextConfig) *TimeContext {
	return &TimeContext{config: cfg}
}

// Name returns the reranker identifier.
func (t *TimeContext) Name() string {
	return "time_context"
}

// Rerank boosts the scores of places the active period favors. Order and
// length are unchanged.
func (t *TimeContext) Rerank(ctx context.Context, items []recommend.ScoredPlace, _ int) []recommend.ScoredPlace {
	if !t.config.Enabled || len(items) == 0 {
		return items
	}

	window, ok := t.config.WindowAt(recommend.RequestTime(ctx))
	if !ok {
		return items
	}

	out := make([]recommend.ScoredPlace, len(items))
	copy(out, items)
	for i := range out {
		if window.Boosts(out[i].Place.Category) {
			out[i].Score *= window.Factor
		}
	}
	return out
}
