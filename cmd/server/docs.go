// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package main provides the Sendero HTTP server
//
// Sendero API ranks nearby places of interest for a traveler profile and
// orders a set of stops into a walkable route.
//
// @title Sendero API
// @version 1.0
// @description Personalized place recommendations and walking route planning
// @description
// @description ## Features
// @description
// @description - **Scored Recommendations**: interest, budget, rating, distance, time-of-day and safety scoring with category diversity
// @description - **Explanations**: every score can be returned with a primary reason and secondary reasons
// @description - **Discovery**: nearby, trending and similar places, and opening-hours checks
// @description - **Route Optimization**: nearest neighbor plus 2-opt ordering with opening-hour feasibility
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Rejected requests receive 429 with the standard error envelope.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-02T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/sendero/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Recommendations
// @tag.description Scored and explained place recommendations
//
// @tag.name Places
// @tag.description Place lookup and discovery
//
// @tag.name Routes
// @tag.description Route optimization
package main
