package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/platform/postgres"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
)

// seedPassword is the password of every seeded account.
const seedPassword = "12345678"

var (
	seedStudentNames = []string{"Ana Souza", "Bruno Lima", "Carla Mendes"}
	seedCourseTitles = []string{"Introduction to Go", "Relational Databases"}
)

// seedResult lists what seedDatabase inserted.
type seedResult struct {
	Manager  *domain.User
	Students []*domain.User
	Courses  []*domain.Course
}

// seedDatabase inserts three students, one manager, two courses and the
// enrollments {course1: student1, student2; course2: student3} in a single
// transaction. Emails carry a random suffix so the seed can be rerun.
func seedDatabase(ctx context.Context, db *sql.DB, bcryptCost int, logger *slog.Logger) (*seedResult, error) {
	seedLogger := logger.With("component", "seed")
	suffix := uuid.NewString()[:8]
	result := &seedResult{}

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		users := postgres.NewPostgresUserStore(tx, bcryptCost)
		courses := postgres.NewPostgresCourseStore(tx, seedLogger)
		enrollments := postgres.NewPostgresEnrollmentStore(tx, seedLogger)

		for i, name := range seedStudentNames {
			email := fmt.Sprintf("student%d-%s@example.com", i+1, suffix)
			student, err := createSeedUser(ctx, users, name, email, domain.RoleStudent)
			if err != nil {
				return err
			}
			result.Students = append(result.Students, student)
		}

		manager, err := createSeedUser(ctx, users, "Course Manager",
			fmt.Sprintf("manager-%s@example.com", suffix), domain.RoleManager)
		if err != nil {
			return err
		}
		result.Manager = manager

		for _, title := range seedCourseTitles {
			course, err := domain.NewCourse(title)
			if err != nil {
				return err
			}
			if err := courses.Create(ctx, course); err != nil {
				return fmt.Errorf("failed to create course %q: %w", title, err)
			}
			result.Courses = append(result.Courses, course)
		}

		pairs := []struct{ course, student int }{{0, 0}, {0, 1}, {1, 2}}
		for _, p := range pairs {
			enrollment, err := domain.NewEnrollment(result.Courses[p.course].ID, result.Students[p.student].ID)
			if err != nil {
				return err
			}
			if err := enrollments.Create(ctx, enrollment); err != nil {
				return fmt.Errorf("failed to create enrollment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	seedLogger.Info("Database seeded",
		"students", len(result.Students),
		"courses", len(result.Courses),
		"manager_email", result.Manager.Email)
	return result, nil
}

func createSeedUser(
	ctx context.Context,
	users store.UserStore,
	name, email string,
	role domain.Role,
) (*domain.User, error) {
	user, err := domain.NewUser(name, email, seedPassword, role)
	if err != nil {
		return nil, err
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	return user, nil
}
