// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/tomtom215/sendero/internal/models"
)

// readinessTimeout bounds each dependency ping.
const readinessTimeout = 3 * time.Second

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Liveness probe
// @Description Returns 200 OK while the process is running, regardless of external dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, models.HealthStatus{
		Status:  "alive",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK only if every registered dependency answers its ping.
//
// @Summary Readiness probe
// @Description Pings the places provider and other registered dependencies. Returns 503 if any of them fails.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := models.HealthStatus{
		Status:  "ready",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Checks:  make(map[string]string, len(names)),
	}

	for _, name := range names {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		err := h.checks[name].Ping(ctx)
		cancel()

		if err != nil {
			status.Status = "not_ready"
			status.Checks[name] = err.Error()
			h.logger.Warn().Err(err).Str("check", name).Msg("Readiness check failed")
			continue
		}
		status.Checks[name] = "ok"
	}

	code := http.StatusOK
	envelope := "success"
	if status.Status != "ready" {
		code = http.StatusServiceUnavailable
		envelope = "error"
	}

	respondJSON(w, code, &models.APIResponse{
		Status: envelope,
		Data:   status,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
