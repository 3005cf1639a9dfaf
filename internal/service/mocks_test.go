package service

import (
	"context"
	"database/sql"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCourseStore mocks the store.CourseStore interface
type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseStore) List(ctx context.Context, filter store.CourseFilter) (*store.CoursePage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.CoursePage), args.Error(1)
}

func (m *MockCourseStore) WithTx(tx *sql.Tx) store.CourseStore {
	args := m.Called(tx)
	return args.Get(0).(store.CourseStore)
}
