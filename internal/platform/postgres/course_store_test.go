package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	countAllQuery     = "SELECT COUNT(*) FROM courses c"
	countSearchQuery  = "SELECT COUNT(*) FROM courses c WHERE c.title ILIKE $1"
	pageSelectPrefix  = "SELECT c.id, c.title, COUNT(e.user_id) FROM courses c LEFT JOIN enrollments e ON e.course_id = c.id"
	pageGroupAndOrder = "GROUP BY c.id, c.title ORDER BY "
)

func exactQuery(q string) string {
	return "^" + regexp.QuoteMeta(q) + "$"
}

func TestNewPostgresCourseStore(t *testing.T) {
	t.Run("nil_db_panics", func(t *testing.T) {
		assert.Panics(t, func() { NewPostgresCourseStore(nil, nil) })
	})

	t.Run("nil_logger_uses_default", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresCourseStore(db, nil)
		assert.NotNil(t, s.logger)
		assert.NotNil(t, s.tracer)
	})
}

func TestCourseStore_Create(t *testing.T) {
	t.Run("inserts valid course", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCourseStore(db, discardLogger())

		course, err := domain.NewCourse("Intro to Go")
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO courses (id, title, description)")).
			WithArgs(course.ID, "Intro to Go", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Create(context.Background(), course))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid course without touching the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCourseStore(db, discardLogger())

		err := s.Create(context.Background(), &domain.Course{ID: uuid.New(), Title: "Go"})
		assert.ErrorIs(t, err, domain.ErrCourseTitleTooShort)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps check violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCourseStore(db, discardLogger())

		course, err := domain.NewCourse("Intro to Go")
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO courses")).
			WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "courses_title_not_empty"})

		err = s.Create(context.Background(), course)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestCourseStore_GetByID(t *testing.T) {
	id := uuid.New()
	query := regexp.QuoteMeta("SELECT id, title, description FROM courses WHERE id = $1")

	t.Run("found with null description", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}).
				AddRow(id.String(), "Intro to Go", nil))

		course, err := s.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, course.ID)
		assert.Equal(t, "Intro to Go", course.Title)
		assert.Nil(t, course.Description)
	})

	t.Run("found with description", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}).
				AddRow(id.String(), "Intro to Go", "Basics"))

		course, err := s.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, course.Description)
		assert.Equal(t, "Basics", *course.Description)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}))

		course, err := s.GetByID(context.Background(), id)
		assert.Nil(t, course)
		assert.ErrorIs(t, err, store.ErrCourseNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

		_, err := s.GetByID(context.Background(), id)
		assert.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestCourseStore_List(t *testing.T) {
	idA, idB := uuid.New(), uuid.New()
	pageColumns := []string{"id", "title", "count"}

	t.Run("no filter has no where clause and defaults to title order", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.MatchExpectationsInOrder(false)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(exactQuery(countAllQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(exactQuery(pageSelectPrefix+" "+pageGroupAndOrder+"c.title ASC, c.id ASC LIMIT $1 OFFSET $2")).
			WithArgs(store.CoursePageSize, 0).
			WillReturnRows(sqlmock.NewRows(pageColumns).
				AddRow(idA.String(), "Alpha course", 2).
				AddRow(idB.String(), "Beta course", 0))

		page, err := s.List(context.Background(), store.CourseFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
		require.Len(t, page.Courses, 2)
		assert.Equal(t, domain.CourseSummary{ID: idA, Title: "Alpha course", Enrollments: 2}, page.Courses[0])
		assert.Equal(t, 0, page.Courses[1].Enrollments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search and order by id on page two", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.MatchExpectationsInOrder(false)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(exactQuery(countSearchQuery)).
			WithArgs("%go%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
		mock.ExpectQuery(exactQuery(pageSelectPrefix+" WHERE c.title ILIKE $1 "+pageGroupAndOrder+"c.id ASC LIMIT $2 OFFSET $3")).
			WithArgs("%go%", store.CoursePageSize, store.CoursePageSize).
			WillReturnRows(sqlmock.NewRows(pageColumns).AddRow(idA.String(), "Advanced Go", 1))

		page, err := s.List(context.Background(), store.CourseFilter{
			Search:  "go",
			OrderBy: store.CourseOrderByID,
			Page:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, 11, page.Total)
		assert.Len(t, page.Courses, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.MatchExpectationsInOrder(false)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(exactQuery(countSearchQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(pageSelectPrefix)).
			WillReturnRows(sqlmock.NewRows(pageColumns))

		page, err := s.List(context.Background(), store.CourseFilter{Search: "nothing"})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.NotNil(t, page.Courses)
		assert.Empty(t, page.Courses)
	})

	t.Run("count failure fails the call", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.MatchExpectationsInOrder(false)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(exactQuery(countAllQuery)).
			WillReturnError(errors.New("count exploded"))
		mock.ExpectQuery(regexp.QuoteMeta(pageSelectPrefix)).
			WillReturnRows(sqlmock.NewRows(pageColumns).AddRow(idA.String(), "Alpha course", 0))

		page, err := s.List(context.Background(), store.CourseFilter{})
		assert.Nil(t, page)
		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "list", storeErr.Operation)
	})

	t.Run("page failure fails the call", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.MatchExpectationsInOrder(false)
		s := NewPostgresCourseStore(db, discardLogger())

		mock.ExpectQuery(exactQuery(countAllQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta(pageSelectPrefix)).
			WillReturnError(errors.New("page exploded"))

		page, err := s.List(context.Background(), store.CourseFilter{})
		assert.Nil(t, page)
		assert.Error(t, err)
	})
}

func TestCourseStore_WithTx(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresCourseStore(db, discardLogger())

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	txStore, ok := s.WithTx(tx).(*PostgresCourseStore)
	require.True(t, ok)
	assert.Same(t, tx, txStore.db)
	assert.Same(t, s.logger, txStore.logger)
	assert.Equal(t, 2, s.listParallelism)
	assert.Equal(t, 1, txStore.listParallelism)
}
