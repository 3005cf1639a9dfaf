//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/coursedesk/course-api/internal/platform/postgres"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds connection checks.
const TestTimeout = 5 * time.Second

// MigrationTable is the goose version table, shared with cmd/server.
const MigrationTable = "schema_migrations"

var (
	migrateOnce sync.Once
	migrateErr  error
)

// DatabaseURL returns the URL of the test database, or "" when none is set.
func DatabaseURL() string {
	if url := os.Getenv("COURSES_TEST_DB_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// GetTestDB opens a connection to the test database and brings its schema
// up to date. The test is skipped when no database URL is configured.
// The connection is closed when the test finishes.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := DatabaseURL()
	if dbURL == "" {
		t.Skip("COURSES_TEST_DB_URL or DATABASE_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	migrateOnce.Do(func() {
		migrateErr = ApplyMigrations(db)
	})
	require.NoError(t, migrateErr, "Failed to apply migrations")

	return db
}

// ApplyMigrations runs every embedded migration that has not been applied yet.
func ApplyMigrations(db *sql.DB) error {
	goose.SetBaseFS(postgres.MigrationsFS)
	goose.SetTableName(MigrationTable)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction that is rolled back afterwards, so
// nothing fn writes is visible to other tests.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	// The transaction outlives any timeout: database/sql rolls back a tx
	// whose context is canceled.
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if fn already finished the transaction
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// ResetCourses removes every course, and through the cascade every
// enrollment, visible to tx. Listing tests use it to start from a known
// empty catalogue inside their own transaction.
func ResetCourses(t *testing.T, tx *sql.Tx) {
	t.Helper()
	_, err := tx.Exec("DELETE FROM courses")
	require.NoError(t, err, "Failed to clear courses")
}
