package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/platform/logger"
	"github.com/coursedesk/course-api/internal/store"
)

// PostgresEnrollmentStore implements the store.EnrollmentStore interface.
type PostgresEnrollmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEnrollmentStore creates a new PostgreSQL implementation of the EnrollmentStore interface.
func NewPostgresEnrollmentStore(db store.DBTX, logger *slog.Logger) *PostgresEnrollmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresEnrollmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "enrollment_store")),
	}
}

// Ensure PostgresEnrollmentStore implements store.EnrollmentStore interface
var _ store.EnrollmentStore = (*PostgresEnrollmentStore)(nil)

// Create implements store.EnrollmentStore.Create
func (s *PostgresEnrollmentStore) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := enrollment.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO enrollments (course_id, user_id)
		VALUES ($1, $2)
	`
	if _, err := s.db.ExecContext(ctx, query, enrollment.CourseID, enrollment.UserID); err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("enrollment references a missing course or user",
				slog.String("course_id", enrollment.CourseID.String()),
				slog.String("user_id", enrollment.UserID.String()))
			return fmt.Errorf("%w: course %s or user %s not found",
				store.ErrInvalidEntity, enrollment.CourseID, enrollment.UserID)
		}
		log.Error("failed to create enrollment",
			slog.String("error", err.Error()),
			slog.String("course_id", enrollment.CourseID.String()),
			slog.String("user_id", enrollment.UserID.String()))
		return MapUniqueViolation(err, store.ErrEnrollmentExists)
	}

	log.Debug("enrollment created",
		slog.String("course_id", enrollment.CourseID.String()),
		slog.String("user_id", enrollment.UserID.String()))
	return nil
}

// WithTx implements store.EnrollmentStore.WithTx
func (s *PostgresEnrollmentStore) WithTx(tx *sql.Tx) store.EnrollmentStore {
	return &PostgresEnrollmentStore{
		db:     tx,
		logger: s.logger,
	}
}
