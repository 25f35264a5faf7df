// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

// Package testinfra provides test infrastructure for the places data layer.
//
// # PostGIS Container
//
// Built with the integration tag, NewPostGISContainer runs a real PostGIS
// database through testcontainers-go:
//
//	//go:build integration
//
//	func TestPostgresProvider(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostGISContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//	    // connect with pg.DSN
//	}
//
// Run with:
//
//	go test -tags integration ./internal/places/...
//
// # Overpass Mock
//
// MockOverpassServer answers Overpass API queries with a canned JSON body and
// records the queries it received. It needs no Docker and is available in
// regular unit tests.
package testinfra
