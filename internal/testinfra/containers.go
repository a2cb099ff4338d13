// Package testinfra starts throwaway PostgreSQL containers for integration
// tests that exercise a real pg_dump against a real server. Unit tests never
// touch this package; integration tests skip unless PGSPLIT_INTEGRATION=1.
package testinfra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	PostgresImage    = "postgres:17-alpine"
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
	PostgresDB       = "postgres"
)

// IntegrationEnvVar gates integration tests; set it to 1 to run them.
const IntegrationEnvVar = "PGSPLIT_INTEGRATION"

type PostgresContainer struct {
	*postgres.PostgresContainer
	ConnString string
}

// IntegrationEnabled reports whether the integration suite should run.
func IntegrationEnabled() bool {
	return os.Getenv(IntegrationEnvVar) == "1"
}

// StartPostgres runs a PostgreSQL container, optionally seeded with schema
// scripts, and returns a conninfo string suitable for pg_dump.
func StartPostgres(ctx context.Context, seedSQL ...string) (*PostgresContainer, error) {
	opts := []testcontainers.ContainerCustomizer{
		postgres.WithUsername(PostgresUser),
		postgres.WithPassword(PostgresPassword),
		postgres.WithDatabase(PostgresDB),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		),
	}

	if len(seedSQL) > 0 {
		scripts, err := writeSeedScripts(seedSQL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, postgres.WithInitScripts(scripts...))
	}

	ctr, err := postgres.Run(ctx, PostgresImage, opts...)
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &PostgresContainer{PostgresContainer: ctr, ConnString: connStr}, nil
}

// writeSeedScripts materializes seed SQL as numbered init scripts in a temp
// directory so the container entrypoint applies them in order.
func writeSeedScripts(seedSQL []string) ([]string, error) {
	dir, err := os.MkdirTemp("", "pgsplit-seed-")
	if err != nil {
		return nil, fmt.Errorf("create seed dir: %w", err)
	}

	paths := make([]string, 0, len(seedSQL))
	for i, sql := range seedSQL {
		path := filepath.Join(dir, fmt.Sprintf("%02d-seed.sql", i+1))
		if err := os.WriteFile(path, []byte(sql), 0644); err != nil {
			return nil, fmt.Errorf("write seed script: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
