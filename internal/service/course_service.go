package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/platform/logger"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
)

// CourseService provides the course use cases exposed by the API.
type CourseService interface {
	// ListCourses returns one page of courses matching filter with their
	// enrollment counts, and the total number of matches.
	ListCourses(ctx context.Context, filter store.CourseFilter) (*store.CoursePage, error)

	// GetCourse returns the course with the given id, or ErrCourseNotFound.
	GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	// CreateCourse stores a new course with the given title and no description.
	// Title violations are returned as domain validation errors.
	CreateCourse(ctx context.Context, title string) (*domain.Course, error)
}

type courseServiceImpl struct {
	courses store.CourseStore
	logger  *slog.Logger
}

// NewCourseService creates a CourseService backed by courses.
func NewCourseService(courses store.CourseStore, logger *slog.Logger) (CourseService, error) {
	if courses == nil {
		return nil, errors.New("course store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &courseServiceImpl{
		courses: courses,
		logger:  logger.With(slog.String("component", "course_service")),
	}, nil
}

// ListCourses implements CourseService.ListCourses
func (s *courseServiceImpl) ListCourses(
	ctx context.Context,
	filter store.CourseFilter,
) (*store.CoursePage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page, err := s.courses.List(ctx, filter.Normalize())
	if err != nil {
		log.Error("failed to list courses",
			slog.String("error", err.Error()),
			slog.Int("page", filter.Page))
		return nil, NewServiceError("list_courses", "failed to list courses", err)
	}

	if page.Courses == nil {
		page.Courses = []domain.CourseSummary{}
	}
	return page, nil
}

// GetCourse implements CourseService.GetCourse
func (s *courseServiceImpl) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("course not found", slog.String("course_id", id.String()))
			return nil, ErrCourseNotFound
		}
		log.Error("failed to get course",
			slog.String("error", err.Error()),
			slog.String("course_id", id.String()))
		return nil, NewServiceError("get_course", "failed to retrieve course", err)
	}

	return course, nil
}

// CreateCourse implements CourseService.CreateCourse
func (s *courseServiceImpl) CreateCourse(ctx context.Context, title string) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	course, err := domain.NewCourse(title)
	if err != nil {
		log.Debug("rejected course", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		log.Error("failed to create course",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return nil, NewServiceError("create_course", "failed to save course", err)
	}

	log.Info("course created", slog.String("course_id", course.ID.String()))
	return course, nil
}
