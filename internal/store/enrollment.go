package store

import (
	"context"
	"database/sql"

	"github.com/coursedesk/course-api/internal/domain"
)

// EnrollmentStore defines the interface for enrollment persistence.
// Enrollments are only read in aggregate through CourseStore.List.
type EnrollmentStore interface {
	// Create links a user to a course.
	// Returns ErrEnrollmentExists if the pair already exists and
	// ErrInvalidEntity if either side does not exist.
	Create(ctx context.Context, enrollment *domain.Enrollment) error

	// WithTx returns a new EnrollmentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) EnrollmentStore
}
