package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/coursedesk/course-api/internal/config"
	"github.com/coursedesk/course-api/internal/platform/postgres"
	"github.com/coursedesk/course-api/internal/service"
	"github.com/coursedesk/course-api/internal/service/auth"
	"github.com/coursedesk/course-api/internal/store"
)

// application holds the shared dependencies of the HTTP server so they can
// be wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore   store.UserStore
	courseStore store.CourseStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	courseService    service.CourseService
}

// newApplication wires stores and services around an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost)
	app.courseStore = postgres.NewPostgresCourseStore(db, logger)

	app.courseService, err = service.NewCourseService(app.courseStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create course service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router, err := app.setupRouter()
	if err != nil {
		return err
	}
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
}
