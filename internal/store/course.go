package store

import (
	"context"
	"math"
	"database/sql"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/google/uuid"
)

// CoursePageSize is the fixed number of courses per listing page. It is used
// both as the LIMIT and as the stride for OFFSET.
const CoursePageSize = 10

// MaxCoursePage is the highest page whose offset fits in a 32-bit int.
const MaxCoursePage = math.MaxInt32 / CoursePageSize

// CourseOrderField is a sortable column of the course listing.
type CourseOrderField string

const (
	CourseOrderByID    CourseOrderField = "id"
	CourseOrderByTitle CourseOrderField = "title"
)

// DefaultCourseOrder is used when no ordering is requested.
const DefaultCourseOrder = CourseOrderByTitle

// Valid reports whether f is a known sortable field.
func (f CourseOrderField) Valid() bool {
	return f == CourseOrderByID || f == CourseOrderByTitle
}

// CourseFilter holds the optional inputs of the course listing.
// Zero values mean "no filter", the default order, and the first page.
type CourseFilter struct {
	// Search is a case-insensitive substring matched against the title.
	Search string
	// OrderBy is the ascending sort field.
	OrderBy CourseOrderField
	// Page is 1-based.
	Page int
}

// Normalize fills in defaults for unset fields.
func (f CourseFilter) Normalize() CourseFilter {
	if f.OrderBy == "" {
		f.OrderBy = DefaultCourseOrder
	}
	if f.Page == 0 {
		f.Page = 1
	}
	return f
}

// Offset returns the number of rows skipped before the requested page.
// Pages outside [1, MaxCoursePage] are clamped so the offset is never negative.
func (f CourseFilter) Offset() int {
	page := min(max(f.Page, 1), MaxCoursePage)
	return (page - 1) * CoursePageSize
}

// CoursePage is one window of the course listing plus the number of courses
// matching the filter regardless of the window.
type CoursePage struct {
	Courses []domain.CourseSummary
	Total   int
}

// CourseStore defines the interface for course data persistence.
type CourseStore interface {
	// Create saves a new course to the store.
	// Returns validation errors from the domain Course if data is invalid.
	Create(ctx context.Context, course *domain.Course) error

	// GetByID retrieves a course by its unique ID.
	// Returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	// List returns the requested page of courses matching filter, each with its
	// enrollment count, together with the total number of matching courses.
	// Courses without enrollments are included with a count of zero.
	List(ctx context.Context, filter CourseFilter) (*CoursePage, error)

	// WithTx returns a new CourseStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CourseStore
}
