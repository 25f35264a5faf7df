// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/sendero/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if got := cfg.Weights.Sum(); got != 100 {
		t.Errorf("weights sum = %v, want 100", got)
	}
	if cfg.Search.DefaultRadius != 5000 || cfg.Search.MaxRadius != 20000 {
		t.Errorf("unexpected radii: %+v", cfg.Search)
	}
	if cfg.Search.MaxResults != 20 || cfg.Search.MinResults != 5 {
		t.Errorf("unexpected result bounds: %+v", cfg.Search)
	}
	if cfg.Fallback.RadiusExpansionStep != 2000 || cfg.Fallback.MaxExpansions != 3 {
		t.Errorf("unexpected fallback: %+v", cfg.Fallback)
	}
	if cfg.Cache.TTL != 15*time.Minute {
		t.Errorf("cache ttl = %v", cfg.Cache.TTL)
	}
	if len(cfg.TimeContext.Periods) != 4 {
		t.Errorf("periods = %d, want 4", len(cfg.TimeContext.Periods))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default",
			modify: func(c *Config) {},
		},
		{
			name:   "valid timezone",
			modify: func(c *Config) { c.Timezone = "Europe/Madrid" },
		},
		{
			name:    "unknown timezone",
			modify:  func(c *Config) { c.Timezone = "Mars/Olympus_Mons" },
			wantErr: "timezone",
		},
		{
			name:    "weights not summing to 100",
			modify:  func(c *Config) { c.Weights.Interests = 40 },
			wantErr: "sum to 100",
		},
		{
			name: "negative weight",
			modify: func(c *Config) {
				c.Weights.Dietary = -5
				c.Weights.Interests = 40
			},
			wantErr: "weights.dietary",
		},
		{
			name:    "default radius above max",
			modify:  func(c *Config) { c.Search.DefaultRadius = 30000 },
			wantErr: "search.default_radius",
		},
		{
			name:    "zero max results",
			modify:  func(c *Config) { c.Search.MaxResults = 0 },
			wantErr: "search.max_results",
		},
		{
			name:    "category fraction above one",
			modify:  func(c *Config) { c.Diversity.MaxSameCategoryFraction = 1.5 },
			wantErr: "diversity.max_same_category_fraction",
		},
		{
			name:    "period gap",
			modify:  func(c *Config) { c.TimeContext.Periods = c.TimeContext.Periods[:3] },
			wantErr: "hour 0",
		},
		{
			name: "overlapping periods",
			modify: func(c *Config) {
				c.TimeContext.Periods[0].StartHour = 5
			},
			wantErr: "hour 5",
		},
		{
			name:    "non-positive expansion step",
			modify:  func(c *Config) { c.Fallback.RadiusExpansionStep = 0 },
			wantErr: "fallback.radius_expansion_step",
		},
		{
			name:    "negative retries",
			modify:  func(c *Config) { c.Errors.MaxRetries = -1 },
			wantErr: "errors.max_retries",
		},
		{
			name:    "zero cache ttl",
			modify:  func(c *Config) { c.Cache.TTL = 0 },
			wantErr: "cache.ttl",
		},
		{
			name: "zero cache ttl with cache disabled",
			modify: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.TTL = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestTimeContextConfig_PeriodAt(t *testing.T) {
	cfg := DefaultConfig().TimeContext

	tests := []struct {
		hour int
		want models.TimePeriod
	}{
		{0, models.PeriodLateNight},
		{5, models.PeriodLateNight},
		{6, models.PeriodMorning},
		{11, models.PeriodMorning},
		{12, models.PeriodAfternoon},
		{17, models.PeriodAfternoon},
		{18, models.PeriodEvening},
		{23, models.PeriodEvening},
	}
	for _, tt := range tests {
		at := time.Date(2026, 6, 1, tt.hour, 30, 0, 0, time.UTC)
		if got := cfg.PeriodAt(at); got != tt.want {
			t.Errorf("PeriodAt(%02d:30) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.Weights.Interests = 99
	clone.TimeContext.Periods[0].Factor = 3
	clone.TimeContext.Periods[0].Categories[0] = models.CategoryChurch

	if cfg.Weights.Interests != 30 {
		t.Error("Clone shares weights")
	}
	if cfg.TimeContext.Periods[0].Factor != 1.2 {
		t.Error("Clone shares periods")
	}
	if cfg.TimeContext.Periods[0].Categories[0] != models.CategoryCafe {
		t.Error("Clone shares period categories")
	}
}

func TestConfig_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Config
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := decoded.Validate(); err != nil {
		t.Errorf("decoded config invalid: %v", err)
	}
	for _, key := range []string{`"max_same_category_fraction"`, `"time_context"`, `"radius_expansion_step"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing %s", key)
		}
	}
}
