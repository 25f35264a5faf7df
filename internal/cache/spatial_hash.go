// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package cache

import (
	"math"
	"sort"
	"sync"

	"github.com/tomtom215/sendero/internal/geo"
)

// metersPerDegree is the approximate length of one degree of latitude.
const metersPerDegree = 111_320.0

// SpatialHashGrid divides geographic space into cells for fast proximity queries.
// Instead of comparing a query point against every entry, only the cells
// overlapping the query radius are visited.
//
// Use cases:
//   - Static place catalogs: radius queries around the traveler
//   - Nearby result caches: find a cached search centered close to a new one
//
// Time Complexity:
//   - Insert: O(1)
//   - Query nearby: O(k) where k = entries in the visited cells
//   - Remove: O(cell size)
type SpatialHashGrid[T any] struct {
	mu       sync.RWMutex
	cells    map[CellKey][]*SpatialEntry[T]
	cellSize float64 // degrees
	entries  map[string]*SpatialEntry[T]
}

// CellKey represents a grid cell coordinate.
type CellKey struct {
	X, Y int
}

// SpatialEntry is a point in the grid with its payload.
type SpatialEntry[T any] struct {
	ID   string
	Lat  float64
	Lon  float64
	Data T

	cellKey CellKey
}

// Neighbor is a query hit with its distance from the query point.
type Neighbor[T any] struct {
	SpatialEntry[T]
	DistanceMeters float64
}

// NewSpatialHashGrid creates a grid whose cells are roughly cellSizeMeters wide.
// Cells close to the expected query radius keep the number of visited cells small.
func NewSpatialHashGrid[T any](cellSizeMeters float64) *SpatialHashGrid[T] {
	if cellSizeMeters <= 0 {
		cellSizeMeters = 1000
	}

	return &SpatialHashGrid[T]{
		cells:    make(map[CellKey][]*SpatialEntry[T]),
		cellSize: cellSizeMeters / metersPerDegree,
		entries:  make(map[string]*SpatialEntry[T]),
	}
}

func (g *SpatialHashGrid[T]) cellKey(lat, lon float64) CellKey {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return CellKey{
		X: int(math.Floor(lon / g.cellSize)),
		Y: int(math.Floor(lat / g.cellSize)),
	}
}

// Insert adds an entry. An entry with the same ID is replaced.
func (g *SpatialHashGrid[T]) Insert(id string, lat, lon float64, data T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.entries[id]; ok {
		g.removeFromCellUnlocked(existing)
	}

	key := g.cellKey(lat, lon)
	entry := &SpatialEntry[T]{ID: id, Lat: lat, Lon: lon, Data: data, cellKey: key}
	g.cells[key] = append(g.cells[key], entry)
	g.entries[id] = entry
}

// Remove removes an entry by ID.
func (g *SpatialHashGrid[T]) Remove(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, exists := g.entries[id]
	if !exists {
		return false
	}
	g.removeFromCellUnlocked(entry)
	delete(g.entries, id)
	return true
}

// removeFromCellUnlocked removes an entry from its cell (caller must hold lock).
func (g *SpatialHashGrid[T]) removeFromCellUnlocked(entry *SpatialEntry[T]) {
	cell := g.cells[entry.cellKey]
	for i, e := range cell {
		if e.ID == entry.ID {
			cell[i] = cell[len(cell)-1]
			cell = cell[:len(cell)-1]
			break
		}
	}
	if len(cell) == 0 {
		delete(g.cells, entry.cellKey)
		return
	}
	g.cells[entry.cellKey] = cell
}

// Get returns a copy of the entry with the given ID.
func (g *SpatialHashGrid[T]) Get(id string) (SpatialEntry[T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entry, exists := g.entries[id]
	if !exists {
		return SpatialEntry[T]{}, false
	}
	return *entry, true
}

// QueryNearby returns the entries within radiusMeters of the point,
// nearest first. Ties keep ID order so results are deterministic.
func (g *SpatialHashGrid[T]) QueryNearby(lat, lon, radiusMeters float64) []Neighbor[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	latSpan := int(math.Ceil(radiusMeters/metersPerDegree/g.cellSize)) + 1
	lonSpan := latSpan
	if c := math.Cos(lat * math.Pi / 180); c > 0.01 {
		lonSpan = int(math.Ceil(radiusMeters/(metersPerDegree*c)/g.cellSize)) + 1
	}
	center := g.cellKey(lat, lon)

	var results []Neighbor[T]
	for dx := -lonSpan; dx <= lonSpan; dx++ {
		for dy := -latSpan; dy <= latSpan; dy++ {
			for _, entry := range g.cells[CellKey{X: center.X + dx, Y: center.Y + dy}] {
				dist := geo.Haversine(lat, lon, entry.Lat, entry.Lon)
				if dist <= radiusMeters {
					results = append(results, Neighbor[T]{SpatialEntry: *entry, DistanceMeters: dist})
				}
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceMeters != results[j].DistanceMeters {
			return results[i].DistanceMeters < results[j].DistanceMeters
		}
		return results[i].ID < results[j].ID
	})
	return results
}

// Size returns the total number of entries.
func (g *SpatialHashGrid[T]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}

// IDs returns the ids of all entries in sorted order.
func (g *SpatialHashGrid[T]) IDs() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.entries))
	for id := range g.entries {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// NumCells returns the number of non-empty cells.
func (g *SpatialHashGrid[T]) NumCells() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cells)
}

// Clear removes all entries.
func (g *SpatialHashGrid[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cells = make(map[CellKey][]*SpatialEntry[T])
	g.entries = make(map[string]*SpatialEntry[T])
}
