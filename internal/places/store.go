// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/sendero/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	placeKeyPrefix = "place:"
	areaKeyPrefix  = "area:"
)

// areaRecord is a stored nearby query result.
type areaRecord struct {
	Center   models.Location `json:"center"`
	Radius   float64         `json:"radius"`
	IDs      []string        `json:"ids"`
	StoredAt time.Time       `json:"stored_at"`
}

// Store persists places and nearby results in BadgerDB. Entries expire after
// the retention period; freshness is decided by callers from StoredAt.
type Store struct {
	db       *badger.DB
	retain   time.Duration
	inMemory bool
	logger   zerolog.Logger
}

// OpenStore opens the store at cfg.Path, or in memory when the path is empty.
func OpenStore(cfg StoreConfig, logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.Path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open place store: %w", err)
	}
	return &Store{
		db:       db,
		retain:   cfg.RetainFor,
		inMemory: cfg.Path == "",
		logger:   logger.With().Str("component", "place_store").Logger(),
	}, nil
}

// PutPlaces stores places by id.
func (s *Store) PutPlaces(_ context.Context, list []models.Place) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for i := range list {
			if err := s.setPlace(txn, &list[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) setPlace(txn *badger.Txn, p *models.Place) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal place %s: %w", p.ID, err)
	}
	entry := badger.NewEntry([]byte(placeKeyPrefix+p.ID), data)
	if s.retain > 0 {
		entry = entry.WithTTL(s.retain)
	}
	if err := txn.SetEntry(entry); err != nil {
		return fmt.Errorf("set place %s: %w", p.ID, err)
	}
	return nil
}

// GetPlace returns a stored place.
func (s *Store) GetPlace(_ context.Context, id string) (*models.Place, error) {
	var place models.Place
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, placeKeyPrefix+id, &place)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get place %s: %w", id, err)
	}
	return &place, nil
}

// PutArea stores the places found for key along with the query that found them.
func (s *Store) PutArea(_ context.Context, key string, center models.Location, radius float64, list []models.Place, storedAt time.Time) error {
	rec := areaRecord{
		Center:   center,
		Radius:   radius,
		IDs:      make([]string, len(list)),
		StoredAt: storedAt,
	}
	for i := range list {
		rec.IDs[i] = list[i].ID
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal area %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for i := range list {
			if err := s.setPlace(txn, &list[i]); err != nil {
				return err
			}
		}
		entry := badger.NewEntry([]byte(areaKeyPrefix+key), data)
		if s.retain > 0 {
			entry = entry.WithTTL(s.retain)
		}
		return txn.SetEntry(entry)
	})
}

// GetArea returns the stored places for key in stored order and when they
// were stored. Places that expired individually are skipped.
func (s *Store) GetArea(_ context.Context, key string) ([]models.Place, time.Time, bool, error) {
	var (
		rec  areaRecord
		list []models.Place
	)
	err := s.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, areaKeyPrefix+key, &rec); err != nil {
			return err
		}
		list = make([]models.Place, 0, len(rec.IDs))
		for _, id := range rec.IDs {
			var p models.Place
			err := getJSON(txn, placeKeyPrefix+id, &p)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			list = append(list, p)
		}
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("get area %s: %w", key, err)
	}
	return list, rec.StoredAt, true, nil
}

// CountPlaces returns the number of stored places.
func (s *Store) CountPlaces() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(placeKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// RunGC reclaims value log space. It is a no-op for in-memory stores.
func (s *Store) RunGC() error {
	if s.inMemory {
		return nil
	}
	err := s.db.RunValueLogGC(0.5)
	if err == nil || errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	return fmt.Errorf("value log gc: %w", err)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}
