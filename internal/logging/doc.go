// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package logging provides the zerolog-based structured logging used by Sendero.
//
// A global logger is configured once from the logging section of the
// configuration:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//
// Components receive a zerolog.Logger and derive their own child logger:
//
//	logger.With().Str("component", "recommend").Logger()
//
// HTTP handlers log through Ctx, which attaches the request id stored by the
// request id middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Place lookup failed")
//
// SlogHandler adapts zerolog to log/slog for the supervisor tree, and
// RedactDSN masks credentials before connection strings are logged.
//
// Tests pass NewTestLogger(io.Discard) to components, or a bytes.Buffer when
// the output is asserted.
package logging
