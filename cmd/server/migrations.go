package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coursedesk/course-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the goose version table.
const MigrationTableName = "schema_migrations"

// migrationCommands are the goose commands accepted by -migrate.
var migrationCommands = map[string]func(ctx context.Context, db *sql.DB, dir string) error{
	"up": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.UpContext(ctx, db, dir)
	},
	"down": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.DownContext(ctx, db, dir)
	},
	"reset": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.ResetContext(ctx, db, dir)
	},
	"status": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.StatusContext(ctx, db, dir)
	},
	"version": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.VersionContext(ctx, db, dir)
	},
}

// slogGooseLogger forwards goose output to slog. Fatalf logs instead of
// exiting so the error reaches main.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// configureGoose points goose at the embedded migrations.
func configureGoose(logger *slog.Logger) error {
	goose.SetBaseFS(postgres.MigrationsFS)
	goose.SetTableName(MigrationTableName)
	goose.SetLogger(&slogGooseLogger{logger: logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// runMigrations executes one goose command against db.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	exec, ok := migrationCommands[command]
	if !ok {
		return fmt.Errorf("unknown migration command: %s (expected up, down, reset, status, or version)", command)
	}

	migrationLogger := logger.With("component", "migrations", "command", command)
	if err := configureGoose(migrationLogger); err != nil {
		return err
	}

	start := time.Now()
	migrationLogger.Info("Starting migration command")
	if err := exec(ctx, db, postgres.MigrationsDir); err != nil {
		migrationLogger.Error("Migration command failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	migrationLogger.Info("Migration command completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
