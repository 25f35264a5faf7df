// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/tomtom215/sendero/internal/logging"
	"github.com/tomtom215/sendero/internal/models"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS places (
	id                     TEXT PRIMARY KEY,
	name                   TEXT NOT NULL,
	description            TEXT NOT NULL DEFAULT '',
	category               TEXT NOT NULL,
	geom                   GEOGRAPHY(POINT, 4326) NOT NULL,
	address                TEXT NOT NULL DEFAULT '',
	price_level            TEXT NOT NULL DEFAULT 'medium',
	rating                 DOUBLE PRECISION NOT NULL DEFAULT 0,
	review_count           INTEGER NOT NULL DEFAULT 0,
	tags                   TEXT[] NOT NULL DEFAULT '{}',
	opening_hours          JSONB,
	safety_rating          DOUBLE PRECISION,
	average_visit_duration INTEGER NOT NULL DEFAULT 0,
	website                TEXT NOT NULL DEFAULT '',
	phone                  TEXT NOT NULL DEFAULT '',
	is_verified            BOOLEAN NOT NULL DEFAULT FALSE,
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS places_geom_idx ON places USING GIST (geom);
`

const placeColumns = `
	id, name, description, category,
	ST_Y(geom::geometry) AS latitude, ST_X(geom::geometry) AS longitude,
	address, price_level, rating, review_count, tags, opening_hours,
	safety_rating, average_visit_duration, website, phone, is_verified, updated_at`

// placeRow is the database shape of a place.
type placeRow struct {
	ID                   string          `db:"id"`
	Name                 string          `db:"name"`
	Description          string          `db:"description"`
	Category             string          `db:"category"`
	Latitude             float64         `db:"latitude"`
	Longitude            float64         `db:"longitude"`
	Address              string          `db:"address"`
	PriceLevel           string          `db:"price_level"`
	Rating               float64         `db:"rating"`
	ReviewCount          int             `db:"review_count"`
	Tags                 pq.StringArray  `db:"tags"`
	OpeningHours         []byte          `db:"opening_hours"`
	SafetyRating         sql.NullFloat64 `db:"safety_rating"`
	AverageVisitDuration int             `db:"average_visit_duration"`
	Website              string          `db:"website"`
	Phone                string          `db:"phone"`
	Verified             bool            `db:"is_verified"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

func (r *placeRow) toPlace() (models.Place, error) {
	p := models.Place{
		ID:                   r.ID,
		Name:                 r.Name,
		Description:          r.Description,
		Category:             models.Category(r.Category),
		Latitude:             r.Latitude,
		Longitude:            r.Longitude,
		Address:              r.Address,
		PriceLevel:           models.PriceLevel(r.PriceLevel),
		Rating:               r.Rating,
		ReviewCount:          r.ReviewCount,
		Tags:                 []string(r.Tags),
		AverageVisitDuration: r.AverageVisitDuration,
		Website:              r.Website,
		Phone:                r.Phone,
		Verified:             r.Verified,
		UpdatedAt:            r.UpdatedAt,
	}
	if r.SafetyRating.Valid {
		p.SafetyRating = models.Float64Ptr(r.SafetyRating.Float64)
	}
	if len(r.OpeningHours) > 0 {
		if err := json.Unmarshal(r.OpeningHours, &p.OpeningHours); err != nil {
			return models.Place{}, fmt.Errorf("decode opening hours of %s: %w", r.ID, err)
		}
	}
	return p, nil
}

// PostgresProvider reads places from a PostGIS table.
type PostgresProvider struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// NewPostgresProvider connects to cfg.DSN and optionally creates the schema.
func NewPostgresProvider(ctx context.Context, cfg PostgresConfig, logger zerolog.Logger) (*PostgresProvider, error) {
	logger = logger.With().Str("component", "postgres_places").Logger()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	p := &PostgresProvider{db: db, logger: logger}
	if cfg.Migrate {
		if err := p.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	logger.Info().Str("dsn", logging.RedactDSN(cfg.DSN)).Bool("migrated", cfg.Migrate).Msg("Connected to PostGIS")
	return p, nil
}

// Migrate creates the places table and its spatial index.
func (p *PostgresProvider) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate places schema: %w", err)
	}
	return nil
}

// FetchNearby returns verified places within radiusMeters, nearest first.
func (p *PostgresProvider) FetchNearby(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.Place, error) {
	query := `SELECT` + placeColumns + `
		FROM places
		WHERE is_verified
		AND ST_DWithin(geom, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
		LIMIT $4`

	if limit <= 0 {
		limit = 1000
	}
	var rows []placeRow
	if err := p.db.SelectContext(ctx, &rows, query, location.Longitude, location.Latitude, radiusMeters, limit); err != nil {
		return nil, fmt.Errorf("query nearby places: %w", err)
	}

	out := make([]models.Place, 0, len(rows))
	for i := range rows {
		place, err := rows[i].toPlace()
		if err != nil {
			return nil, err
		}
		out = append(out, place)
	}
	return out, nil
}

// FetchByID returns the place with id.
func (p *PostgresProvider) FetchByID(ctx context.Context, id string) (*models.Place, error) {
	var row placeRow
	err := p.db.GetContext(ctx, &row, `SELECT`+placeColumns+` FROM places WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query place %s: %w", id, err)
	}
	place, err := row.toPlace()
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// Upsert inserts or replaces places.
func (p *PostgresProvider) Upsert(ctx context.Context, list []models.Place) error {
	const stmt = `
		INSERT INTO places (id, name, description, category, geom, address, price_level,
			rating, review_count, tags, opening_hours, safety_rating, average_visit_duration,
			website, phone, is_verified, updated_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16, $17, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description, category = EXCLUDED.category,
			geom = EXCLUDED.geom, address = EXCLUDED.address, price_level = EXCLUDED.price_level,
			rating = EXCLUDED.rating, review_count = EXCLUDED.review_count, tags = EXCLUDED.tags,
			opening_hours = EXCLUDED.opening_hours, safety_rating = EXCLUDED.safety_rating,
			average_visit_duration = EXCLUDED.average_visit_duration, website = EXCLUDED.website,
			phone = EXCLUDED.phone, is_verified = EXCLUDED.is_verified, updated_at = now()`

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range list {
		pl := &list[i]
		var hours any
		if len(pl.OpeningHours) > 0 {
			encoded, err := json.Marshal(pl.OpeningHours)
			if err != nil {
				return fmt.Errorf("encode opening hours of %s: %w", pl.ID, err)
			}
			hours = string(encoded)
		}
		var safety sql.NullFloat64
		if pl.SafetyRating != nil {
			safety = sql.NullFloat64{Float64: *pl.SafetyRating, Valid: true}
		}
		tags := pq.StringArray(pl.Tags)
		if tags == nil {
			tags = pq.StringArray{}
		}

		if _, err := tx.ExecContext(ctx, stmt,
			pl.ID, pl.Name, pl.Description, string(pl.Category), pl.Longitude, pl.Latitude,
			pl.Address, string(pl.PriceLevel), pl.Rating, pl.ReviewCount, tags, hours, safety,
			pl.AverageVisitDuration, pl.Website, pl.Phone, pl.Verified,
		); err != nil {
			return fmt.Errorf("upsert place %s: %w", pl.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	p.logger.Info().Int("places", len(list)).Msg("Places upserted")
	return nil
}

// Ping checks the database connection.
func (p *PostgresProvider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the connection pool.
func (p *PostgresProvider) Close() error {
	return p.db.Close()
}
