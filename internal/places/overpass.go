// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/serjvanilla/go-overpass"
	"golang.org/x/time/rate"

	"github.com/tomtom215/sendero/internal/models"
)

// osmSelectors are the tag filters queried around a location.
var osmSelectors = []string{
	`["tourism"~"^(museum|gallery|viewpoint|attraction)$"]`,
	`["amenity"~"^(restaurant|cafe|bar|pub|theatre|marketplace|place_of_worship|arts_centre)$"]`,
	`["leisure"="park"]`,
	`["historic"~"^(monument|memorial|castle|palace)$"]`,
	`["place"="square"]`,
	`["shop"~"^(gift|books|art|antiques|crafts)$"]`,
}

// OverpassProvider fetches places from the OpenStreetMap Overpass API.
type OverpassProvider struct {
	client  *overpass.Client
	limiter *rate.Limiter
	timeout time.Duration
	logger  zerolog.Logger
}

// NewOverpassProvider creates a provider for cfg.Endpoint. Queries are rate
// limited to cfg.RequestsPerSecond.
func NewOverpassProvider(cfg OverpassConfig, logger zerolog.Logger) *OverpassProvider {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	client := overpass.NewWithSettings(cfg.Endpoint, cfg.MaxParallel, httpClient)
	return &OverpassProvider{
		client:  &client,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		timeout: cfg.Timeout,
		logger:  logger.With().Str("component", "overpass").Logger(),
	}
}

// FetchNearby queries named points of interest within radiusMeters.
func (p *OverpassProvider) FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error) {
	around := fmt.Sprintf("(around:%.0f,%.6f,%.6f)", radiusMeters, location.Latitude, location.Longitude)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", int(p.timeout.Seconds()))
	for _, sel := range osmSelectors {
		fmt.Fprintf(&b, "  node%s[\"name\"]%s;\n", sel, around)
		fmt.Fprintf(&b, "  way%s[\"name\"]%s;\n", sel, around)
	}
	b.WriteString(");\nout body;\n>;\nout skel qt;")

	result, err := p.query(ctx, b.String())
	if err != nil {
		return nil, err
	}
	return withinRadius(convertResult(result), location, radiusMeters, limit), nil
}

// FetchByID fetches a place by an id of the form osm-node-<n> or osm-way-<n>.
func (p *OverpassProvider) FetchByID(ctx context.Context, id string) (*models.Place, error) {
	kind, osmID, err := parseOSMID(id)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("[out:json][timeout:%d];\n%s(%d);\nout body;\n>;\nout skel qt;", int(p.timeout.Seconds()), kind, osmID)
	result, err := p.query(ctx, q)
	if err != nil {
		return nil, err
	}

	for _, place := range convertResult(result) {
		if place.ID == id {
			return &place, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
}

// Ping runs a trivial query.
func (p *OverpassProvider) Ping(ctx context.Context) error {
	_, err := p.query(ctx, "[out:json][timeout:5];node(1);out ids;")
	return err
}

type queryResult struct {
	result overpass.Result
	err    error
}

func (p *OverpassProvider) query(ctx context.Context, q string) (*overpass.Result, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("overpass rate limit: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// The client has no context support; the HTTP timeout bounds the goroutine.
	done := make(chan queryResult, 1)
	go func() {
		res, err := p.client.Query(q)
		done <- queryResult{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("overpass query: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("overpass query failed: %w", r.err)
		}
		p.logger.Debug().Int("nodes", len(r.result.Nodes)).Int("ways", len(r.result.Ways)).Msg("Overpass query completed")
		return &r.result, nil
	}
}

func parseOSMID(id string) (kind string, osmID int64, err error) {
	rest, ok := strings.CutPrefix(id, "osm-")
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
	}
	kind, num, ok := strings.Cut(rest, "-")
	if !ok || (kind != "node" && kind != "way") {
		return "", 0, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
	}
	osmID, err = strconv.ParseInt(num, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
	}
	return kind, osmID, nil
}

func convertResult(result *overpass.Result) []models.Place {
	out := make([]models.Place, 0, len(result.Nodes)+len(result.Ways))

	for _, node := range result.Nodes {
		if place, ok := placeFromTags(fmt.Sprintf("osm-node-%d", node.ID), node.Tags, node.Lat, node.Lon); ok {
			out = append(out, place)
		}
	}

	// Ways are placed at the centroid of their resolved nodes.
	for _, way := range result.Ways {
		var lat, lon float64
		count := 0
		for _, node := range way.Nodes {
			if node == nil || (node.Lat == 0 && node.Lon == 0) {
				continue
			}
			lat += node.Lat
			lon += node.Lon
			count++
		}
		if count == 0 {
			continue
		}
		if place, ok := placeFromTags(fmt.Sprintf("osm-way-%d", way.ID), way.Tags, lat/float64(count), lon/float64(count)); ok {
			out = append(out, place)
		}
	}
	return out
}

func placeFromTags(id string, tags map[string]string, lat, lon float64) (models.Place, bool) {
	name := tags["name"]
	if name == "" {
		return models.Place{}, false
	}
	category, ok := categoryFromTags(tags)
	if !ok {
		return models.Place{}, false
	}

	place := models.Place{
		ID:           id,
		Name:         name,
		Description:  tags["description"],
		Category:     category,
		Latitude:     lat,
		Longitude:    lon,
		Address:      addressFromTags(tags),
		PriceLevel:   priceFromTags(tags),
		Tags:         tagsFromOSM(tags),
		OpeningHours: ParseOSMOpeningHours(tags["opening_hours"]),
		Website:      tags["website"],
		Phone:        tags["phone"],
		Verified:     true,
	}
	return place, true
}

func categoryFromTags(tags map[string]string) (models.Category, bool) {
	switch tags["amenity"] {
	case "restaurant":
		return models.CategoryRestaurant, true
	case "cafe":
		return models.CategoryCafe, true
	case "bar", "pub":
		return models.CategoryBar, true
	case "theatre":
		return models.CategoryTheater, true
	case "marketplace":
		return models.CategoryMarket, true
	case "place_of_worship":
		return models.CategoryChurch, true
	case "arts_centre":
		return models.CategoryCulturalCenter, true
	}
	switch tags["tourism"] {
	case "museum":
		return models.CategoryMuseum, true
	case "gallery":
		return models.CategoryGallery, true
	case "viewpoint":
		return models.CategoryViewpoint, true
	case "attraction":
		return models.CategoryMonument, true
	}
	if tags["leisure"] == "park" {
		return models.CategoryPark, true
	}
	if tags["historic"] != "" {
		return models.CategoryMonument, true
	}
	if tags["place"] == "square" {
		return models.CategoryPlaza, true
	}
	if tags["shop"] != "" {
		return models.CategoryShop, true
	}
	return "", false
}

func addressFromTags(tags map[string]string) string {
	street := tags["addr:street"]
	if street == "" {
		return ""
	}
	if number := tags["addr:housenumber"]; number != "" {
		return street + " " + number
	}
	return street
}

func priceFromTags(tags map[string]string) models.PriceLevel {
	if tags["fee"] == "no" || tags["leisure"] == "park" || tags["place"] == "square" {
		return models.PriceLow
	}
	return models.PriceMedium
}

var osmDiets = []struct{ key, tag string }{
	{"diet:vegetarian", "vegetarian"},
	{"diet:vegan", "vegan"},
	{"diet:gluten_free", "gluten-free"},
	{"diet:lactose_free", "lactose-free"},
	{"diet:halal", "halal"},
	{"diet:kosher", "kosher"},
}

// tagsFromOSM derives free-form descriptive tags used for interest,
// dietary and travel-style matching.
func tagsFromOSM(tags map[string]string) []string {
	var out []string
	for _, cuisine := range strings.Split(tags["cuisine"], ";") {
		if c := strings.TrimSpace(strings.ReplaceAll(cuisine, "_", " ")); c != "" {
			out = append(out, c)
		}
	}
	for _, diet := range osmDiets {
		if v := tags[diet.key]; v == "yes" || v == "only" {
			out = append(out, diet.tag)
		}
	}
	if tags["wheelchair"] == "yes" {
		out = append(out, "accessible")
	}
	if tags["outdoor_seating"] == "yes" {
		out = append(out, "outdoor")
	}
	if h := tags["historic"]; h != "" {
		out = append(out, "history", h)
	}
	if t := tags["tourism"]; t != "" {
		out = append(out, t)
	}
	return out
}
