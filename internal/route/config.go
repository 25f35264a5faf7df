// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package route

import (
	"fmt"

	"github.com/tomtom215/sendero/internal/models"
)

// Config contains route optimizer tunables.
type Config struct {
	// AverageSpeedKmh is the travel speed between stops.
	// Default: 30.
	AverageSpeedKmh float64 `json:"average_speed_kmh" koanf:"average_speed_kmh"`

	// DefaultVisitMinutes is used for places without an average visit duration.
	// Default: 60.
	DefaultVisitMinutes int `json:"default_visit_minutes" koanf:"default_visit_minutes"`

	// MaxStops bounds the number of places a single route may contain.
	// Default: 25.
	MaxStops int `json:"max_stops" koanf:"max_stops"`

	// MaxImprovementPasses bounds the 2-opt passes. Zero means no bound.
	// Default: 0.
	MaxImprovementPasses int `json:"max_improvement_passes" koanf:"max_improvement_passes"`
}

// DefaultConfig returns the optimizer defaults.
func DefaultConfig() *Config {
	return &Config{
		AverageSpeedKmh:     30,
		DefaultVisitMinutes: models.DefaultVisitMinutes,
		MaxStops:            25,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.AverageSpeedKmh <= 0 {
		return fmt.Errorf("route.average_speed_kmh must be positive, got %v", c.AverageSpeedKmh)
	}
	if c.DefaultVisitMinutes < 0 {
		return fmt.Errorf("route.default_visit_minutes must be non-negative, got %d", c.DefaultVisitMinutes)
	}
	if c.MaxStops < 1 {
		return fmt.Errorf("route.max_stops must be at least 1, got %d", c.MaxStops)
	}
	if c.MaxImprovementPasses < 0 {
		return fmt.Errorf("route.max_improvement_passes must be non-negative, got %d", c.MaxImprovementPasses)
	}
	return nil
}
