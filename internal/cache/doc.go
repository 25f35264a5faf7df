// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

/*
Package cache provides thread-safe in-memory data structures used by the
recommendation and places layers.

# Overview

Two structures are provided:
  - LRUCache: a typed, bounded LRU cache with per-entry TTL
  - SpatialHashGrid: a typed grid index for radius queries over coordinates

# LRUCache

LRUCache backs the recommendation result cache and the nearby-places cache.
Entries expire lazily on Get, and CleanupExpired lets a background janitor
reclaim memory:

	c := cache.NewLRUCache[[]models.Place](1000, 15*time.Minute)
	c.Add(key, places)
	if places, ok := c.Get(key); ok {
	    // use places
	}

Each walks live entries from most to least recently used, which the nearby
cache uses to find a stored search that covers a new one.

# SpatialHashGrid

SpatialHashGrid buckets points into square cells of a fixed size in degrees.
A radius query visits only the cells overlapping the radius and returns hits
sorted by haversine distance:

	grid := cache.NewSpatialHashGrid[models.Place](1000)
	grid.Insert(p.ID, p.Latitude, p.Longitude, p)
	for _, n := range grid.QueryNearby(lat, lon, 5000) {
	    fmt.Println(n.ID, n.DistanceMeters)
	}

# Thread Safety

All operations are safe for concurrent use. Both structures guard their state
with a sync.RWMutex; read-only queries take the read lock.
*/
package cache
