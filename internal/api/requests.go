// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/sendero/internal/models"
)

// maxBodyBytes bounds request bodies. A 25-stop inline route is well below it.
const maxBodyBytes = 1 << 20

// Query limits for the discovery endpoints.
const (
	maxListLimit     = 100
	defaultListLimit = 20
)

// NearbyQuery is the validated query of GET /places/nearby.
type NearbyQuery struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lon" validate:"longitude"`
	Radius    float64 `json:"radius" validate:"gte=0,lte=50000"`
	Limit     int     `json:"limit" validate:"gte=1,lte=100"`
}

// TrendingQuery is the validated query of GET /places/trending.
type TrendingQuery struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lon" validate:"longitude"`
	Limit     int     `json:"limit" validate:"gte=0,lte=100"`
}

// decodeJSON reads a JSON body into dst. An empty body, trailing data and
// oversized bodies are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// getIntParam extracts an integer query parameter with a default value.
// Malformed values are an error rather than silently defaulted.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return intValue, nil
}

// getFloatParam extracts a float query parameter with a default value.
func getFloatParam(r *http.Request, key string, defaultValue float64) (float64, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return f, nil
}

// parseLocationQuery reads lat and lon. Both must be present.
func parseLocationQuery(r *http.Request) (*models.Location, error) {
	q := r.URL.Query()
	if q.Get("lat") == "" || q.Get("lon") == "" {
		return nil, nil
	}

	lat, err := getFloatParam(r, "lat", 0)
	if err != nil {
		return nil, err
	}
	lon, err := getFloatParam(r, "lon", 0)
	if err != nil {
		return nil, err
	}
	return &models.Location{Latitude: lat, Longitude: lon}, nil
}

// getTimeParam parses an RFC3339 query parameter, defaulting to now.
func getTimeParam(r *http.Request, key string, now time.Time) (time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return now, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC3339 timestamp", key)
	}
	return t, nil
}
