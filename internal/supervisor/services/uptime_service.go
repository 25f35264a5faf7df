// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package services

import (
	"context"
	"runtime"
	"time"

	"github.com/tomtom215/sendero/internal/metrics"
)

// UptimeService publishes app_info once and refreshes app_uptime_seconds on
// every tick.
type UptimeService struct {
	version  string
	started  time.Time
	interval time.Duration
	now      func() time.Time
}

// NewUptimeService reports uptime relative to started.
func NewUptimeService(version string, started time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{
		version:  version,
		started:  started,
		interval: interval,
		now:      time.Now,
	}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	metrics.AppInfo.WithLabelValues(u.version, runtime.Version()).Set(1)
	u.update()

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.update()
		}
	}
}

func (u *UptimeService) update() {
	metrics.AppUptime.Set(u.now().Sub(u.started).Seconds())
}

func (u *UptimeService) String() string {
	return "uptime"
}
