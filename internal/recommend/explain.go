// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/models"
)

const (
	highRatingThreshold = 4.5
	popularReviewCount  = 50
	veryCloseMeters     = 1000.0
	maxSecondaryReasons = 2
)

type phrases struct {
	interest, rating, popular, close, budget, fallback string
}

var phrasesByLanguage = map[string]phrases{
	"en": {
		interest: "Matches your interest in %s",
		rating:   "Highly rated (%.1f/5)",
		popular:  "Popular with %d reviews",
		close:    "Very close (%s)",
		budget:   "Fits your budget",
		fallback: "Recommended for you",
	},
	"es": {
		interest: "Coincide con tu interés en %s",
		rating:   "Excelente calificación (%.1f/5)",
		popular:  "Popular (%d reseñas)",
		close:    "Muy cerca (%s)",
		budget:   "Se ajusta a tu presupuesto",
		fallback: "Recomendado para ti",
	},
}

func phrasesFor(language string) phrases {
	lang := strings.ToLower(language)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if p, ok := phrasesByLanguage[lang]; ok {
		return p
	}
	return phrasesByLanguage["en"]
}

// Explain builds the reasons a place was recommended, in the profile language
// (English unless the profile asks for Spanish). Reasons are collected in a
// fixed order: interest, rating, popularity, proximity, budget. The first is
// the primary reason and the next two are secondary.
func Explain(p *models.Place, profile *models.UserProfile, distanceMeters, score float64) *Explanation {
	ph := phrasesFor(profile.Language)
	reasons := make([]string, 0, 5)

	for _, interest := range profile.Interests {
		if interestCategories[interest.Canonical()].has(p.Category) {
			reasons = append(reasons, fmt.Sprintf(ph.interest, interest.Canonical()))
			break
		}
	}
	if p.Rating >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf(ph.rating, p.Rating))
	}
	if p.ReviewCount > popularReviewCount {
		reasons = append(reasons, fmt.Sprintf(ph.popular, p.ReviewCount))
	}
	if distanceMeters < veryCloseMeters {
		reasons = append(reasons, fmt.Sprintf(ph.close, geo.FormatDistance(distanceMeters)))
	}
	if p.PriceLevel == profile.Budget() {
		reasons = append(reasons, ph.budget)
	}

	exp := &Explanation{
		PrimaryReason:    ph.fallback,
		SecondaryReasons: []string{},
		Score:            score,
		MatchPercentage:  int(math.Round(score)),
	}
	if len(reasons) > 0 {
		exp.PrimaryReason = reasons[0]
		rest := reasons[1:]
		if len(rest) > maxSecondaryReasons {
			rest = rest[:maxSecondaryReasons]
		}
		exp.SecondaryReasons = rest
	}
	return exp
}
