package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/platform/logger"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/coursedesk/course-api/internal/platform/postgres"

// PostgresCourseStore implements the store.CourseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCourseStore struct {
	db     store.DBTX
	logger *slog.Logger
	tracer trace.Tracer
	// listParallelism bounds the concurrent queries issued by List. A
	// transaction is bound to one connection, which serves one query at a time.
	listParallelism int
}

// NewPostgresCourseStore creates a new PostgreSQL implementation of the CourseStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCourseStore(db store.DBTX, logger *slog.Logger) *PostgresCourseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	parallelism := 2
	if _, ok := db.(*sql.Tx); ok {
		parallelism = 1
	}

	return &PostgresCourseStore{
		db:              db,
		logger:          logger.With(slog.String("component", "course_store")),
		tracer:          otel.Tracer(tracerName),
		listParallelism: parallelism,
	}
}

// Ensure PostgresCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*PostgresCourseStore)(nil)

// Create implements store.CourseStore.Create
func (s *PostgresCourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		log.Warn("course validation failed during create",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return err
	}

	query := `
		INSERT INTO courses (id, title, description)
		VALUES ($1, $2, $3)
	`
	if _, err := s.db.ExecContext(ctx, query, course.ID, course.Title, course.Description); err != nil {
		log.Error("failed to create course",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return MapError(err)
	}

	log.Info("course created successfully", slog.String("course_id", course.ID.String()))
	return nil
}

// GetByID implements store.CourseStore.GetByID
// Returns store.ErrCourseNotFound if the course does not exist.
func (s *PostgresCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving course by ID", slog.String("course_id", id.String()))

	query := `
		SELECT id, title, description
		FROM courses
		WHERE id = $1
	`

	var course domain.Course
	var description sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(&course.ID, &course.Title, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("course not found", slog.String("course_id", id.String()))
			return nil, store.ErrCourseNotFound
		}
		log.Error("failed to get course by ID",
			slog.String("error", err.Error()),
			slog.String("course_id", id.String()))
		return nil, MapError(err)
	}
	if description.Valid {
		course.Description = &description.String
	}

	return &course, nil
}

// List implements store.CourseStore.List
// The total count and the requested page are read by two queries sharing the
// same predicates. They run concurrently and either failing fails the call.
func (s *PostgresCourseStore) List(
	ctx context.Context,
	filter store.CourseFilter,
) (*store.CoursePage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	filter = filter.Normalize()

	ctx, span := s.tracer.Start(ctx, "CourseStore.List", trace.WithAttributes(
		attribute.String("course.order_by", string(filter.OrderBy)),
		attribute.Int("course.page", filter.Page),
		attribute.Bool("course.search", filter.Search != ""),
	))
	defer span.End()

	preds := coursePredicates(filter)

	var (
		total   int
		courses []domain.CourseSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.listParallelism)
	g.Go(func() error {
		n, err := s.countCourses(gctx, preds)
		if err != nil {
			return fmt.Errorf("count courses: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		page, err := s.pageCourses(gctx, preds, filter)
		if err != nil {
			return fmt.Errorf("page courses: %w", err)
		}
		courses = page
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list courses failed")
		log.Error("failed to list courses",
			slog.String("error", err.Error()),
			slog.Int("page", filter.Page),
			slog.String("order_by", string(filter.OrderBy)))
		return nil, store.NewStoreError("course", "list", "query failed", MapError(err))
	}

	log.Debug("listed courses",
		slog.Int("total", total),
		slog.Int("returned", len(courses)),
		slog.Int("page", filter.Page))

	return &store.CoursePage{Courses: courses, Total: total}, nil
}

func (s *PostgresCourseStore) countCourses(ctx context.Context, preds *predicates) (int, error) {
	ctx, span := s.tracer.Start(ctx, "CourseStore.count")
	defer span.End()

	query := "SELECT COUNT(*) FROM courses c" + preds.where()

	var total int
	if err := s.db.QueryRowContext(ctx, query, preds.args...).Scan(&total); err != nil {
		span.RecordError(err)
		return 0, err
	}
	return total, nil
}

func (s *PostgresCourseStore) pageCourses(
	ctx context.Context,
	preds *predicates,
	filter store.CourseFilter,
) ([]domain.CourseSummary, error) {
	ctx, span := s.tracer.Start(ctx, "CourseStore.page")
	defer span.End()

	query := fmt.Sprintf(`
		SELECT c.id, c.title, COUNT(e.user_id)
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id%s
		GROUP BY c.id, c.title
		ORDER BY %s
		LIMIT %s OFFSET %s
	`, preds.where(), courseOrderClause(filter.OrderBy), preds.next(1), preds.next(2))

	args := make([]any, 0, len(preds.args)+2)
	args = append(args, preds.args...)
	args = append(args, store.CoursePageSize, filter.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	courses := make([]domain.CourseSummary, 0, store.CoursePageSize)
	for rows.Next() {
		var c domain.CourseSummary
		if err := rows.Scan(&c.ID, &c.Title, &c.Enrollments); err != nil {
			span.RecordError(err)
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("course.rows", len(courses)))
	return courses, nil
}

// WithTx implements store.CourseStore.WithTx
func (s *PostgresCourseStore) WithTx(tx *sql.Tx) store.CourseStore {
	return &PostgresCourseStore{
		db:              tx,
		logger:          s.logger,
		tracer:          s.tracer,
		listParallelism: 1,
	}
}
