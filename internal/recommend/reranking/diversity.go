// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package reranking

import (
	"context"
	"math"

	"github.com/tomtom215/sendero/internal/models"
	"github.com/tomtom215/sendero/internal/recommend"
)

// CategoryDiversity caps the share of any one category in a ranked list and
// rewards lists that span several categories.
//
// The first pass walks items in their given order and keeps each one until
// its category reaches ceil(n * MaxSameCategoryFraction). Deferred items are
// appended afterwards, in order, until k items are kept. If the kept list has
// at least MinCategoryVariety distinct categories, every score is multiplied
// by 1 + CategorySpreadFactor*0.1.
//
// Items must be sorted by descending score for the cap to keep the best
// places of each category.
type CategoryDiversity struct {
	config recommend.DiversityConfig
}

// NewCategoryDiversity creates a diversity reranker.
func NewCategoryDiversity(cfg recommend.DiversityConfig) *CategoryDiversity {
	return &CategoryDiversity{config: cfg}
}

// Name returns the reranker identifier.
func (d *CategoryDiversity) Name() string {
	return "category_diversity"
}

// MaxPerCategory returns the first-pass cap for a list of n items.
func (d *CategoryDiversity) MaxPerCategory(n int) int {
	return int(math.Ceil(float64(n) * d.config.MaxSameCategoryFraction))
}

// Rerank applies the category cap and variety reward.
//
//nolint:gocritic // rangeValCopy: ScoredPlace passed by value in range, acceptable for clarity
func (d *CategoryDiversity) Rerank(_ context.Context, items []recommend.ScoredPlace, k int) []recommend.ScoredPlace {
	if !d.config.Enabled || len(items) == 0 {
		return items
	}

	maxPerCategory := d.MaxPerCategory(len(items))
	counts := make(map[models.Category]int)

	diverse := make([]recommend.ScoredPlace, 0, len(items))
	var remaining []recommend.ScoredPlace

	for _, item := range items {
		cat := item.Place.Category
		if counts[cat] < maxPerCategory {
			diverse = append(diverse, item)
			counts[cat]++
		} else {
			remaining = append(remaining, item)
		}
	}

	if slots := k - len(diverse); slots > 0 {
		if slots > len(remaining) {
			slots = len(remaining)
		}
		for _, item := range remaining[:slots] {
			diverse = append(diverse, item)
			counts[item.Place.Category]++
		}
	}

	if len(counts) >= d.config.MinCategoryVariety {
		factor := 1 + d.config.CategorySpreadFactor*0.1
		for i := range diverse {
			diverse[i].Score *= factor
		}
	}

	return diverse
}
