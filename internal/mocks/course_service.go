package mocks

import (
	"context"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/service"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
)

// MockCourseService implements service.CourseService for testing.
// Calls are counted so tests can assert that a rejected request never
// reached the service.
type MockCourseService struct {
	ListCoursesFn  func(ctx context.Context, filter store.CourseFilter) (*store.CoursePage, error)
	GetCourseFn    func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	CreateCourseFn func(ctx context.Context, title string) (*domain.Course, error)

	Page   *store.CoursePage
	Course *domain.Course
	Err    error

	ListCalls   int
	GetCalls    int
	CreateCalls int
	LastFilter  store.CourseFilter
}

var _ service.CourseService = (*MockCourseService)(nil)

// ListCourses implements service.CourseService
func (m *MockCourseService) ListCourses(
	ctx context.Context,
	filter store.CourseFilter,
) (*store.CoursePage, error) {
	m.ListCalls++
	m.LastFilter = filter
	if m.ListCoursesFn != nil {
		return m.ListCoursesFn(ctx, filter)
	}
	return m.Page, m.Err
}

// GetCourse implements service.CourseService
func (m *MockCourseService) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	m.GetCalls++
	if m.GetCourseFn != nil {
		return m.GetCourseFn(ctx, id)
	}
	return m.Course, m.Err
}

// CreateCourse implements service.CourseService
func (m *MockCourseService) CreateCourse(ctx context.Context, title string) (*domain.Course, error) {
	m.CreateCalls++
	if m.CreateCourseFn != nil {
		return m.CreateCourseFn(ctx, title)
	}
	return m.Course, m.Err
}
