// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultPostGISImage is the PostGIS image used for place storage tests.
	DefaultPostGISImage = "postgis/postgis:16-3.4-alpine"

	// DefaultPostgresPort is the PostgreSQL port inside the container.
	DefaultPostgresPort = "5432"

	postgresUser     = "sendero"
	postgresPassword = "sendero"
	postgresDB       = "sendero"
)

// PostGISContainer is a running PostGIS database.
type PostGISContainer struct {
	testcontainers.Container
	// DSN is a lib/pq connection string for the database.
	DSN string
}

// PostGISOption configures the PostGIS container.
type PostGISOption func(*postgisConfig)

type postgisConfig struct {
	image        string
	startTimeout time.Duration
}

// WithPostGISImage sets a custom image.
func WithPostGISImage(image string) PostGISOption {
	return func(c *postgisConfig) {
		c.image = image
	}
}

// WithPostGISStartTimeout sets how long to wait for the database.
func WithPostGISStartTimeout(timeout time.Duration) PostGISOption {
	return func(c *postgisConfig) {
		c.startTimeout = timeout
	}
}

// NewPostGISContainer starts a PostGIS container and waits until it accepts
// connections.
//
// Example:
//
//	pg, err := testinfra.NewPostGISContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg)
//
//	provider, err := places.NewPostgresProvider(ctx, places.PostgresConfig{DSN: pg.DSN, MaxOpenConns: 2, Migrate: true}, logger)
func NewPostGISContainer(ctx context.Context, opts ...PostGISOption) (*PostGISContainer, error) {
	cfg := &postgisConfig{
		image:        DefaultPostGISImage,
		startTimeout: 90 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultPostgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDB,
			"TZ":                "UTC",
		},
		// The entrypoint restarts the server once after init, so wait for the second ready line.
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(DefaultPostgresPort+"/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create postgis container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, DefaultPostgresPort+"/tcp")
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &PostGISContainer{
		Container: container,
		DSN: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			postgresUser, postgresPassword, host, port.Port(), postgresDB),
	}, nil
}
