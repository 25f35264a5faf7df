// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package middleware provides the HTTP middleware Sendero adds on top of chi's
// own: request ids that flow into the logging context, and Prometheus
// request metrics labelled by route pattern.
//
// Both are plain func(http.Handler) http.Handler and are installed with
// chi's Router.Use:
//
//	r.Use(middleware.RequestID)
//	r.Use(middleware.PrometheusMetrics)
package middleware
