package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursedesk/course-api/internal/api/shared"
	"github.com/coursedesk/course-api/internal/platform/logger"
	"github.com/coursedesk/course-api/internal/service"
)

type listRequestKey struct{}

// CourseHandler serves the course endpoints.
type CourseHandler struct {
	courseService service.CourseService
	logger        *slog.Logger
}

// NewCourseHandler creates a CourseHandler. A nil logger falls back to slog.Default.
func NewCourseHandler(courseService service.CourseService, logger *slog.Logger) *CourseHandler {
	if courseService == nil {
		panic("courseService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		courseService: courseService,
		logger:        logger.With("component", "course_handler"),
	}
}

// ValidateListQuery parses and validates the GET /courses query string and
// stores the typed request in the context. Invalid queries are rejected with
// 400 before any later middleware runs.
func (h *CourseHandler) ValidateListQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parseListCoursesRequest(r.URL.Query())
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), listRequestKey{}, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func listRequestFromContext(ctx context.Context) (ListCoursesRequest, bool) {
	req, ok := ctx.Value(listRequestKey{}).(ListCoursesRequest)
	return req, ok
}

// ListCourses handles GET /courses.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	req, ok := listRequestFromContext(r.Context())
	if !ok {
		var err error
		if req, err = parseListCoursesRequest(r.URL.Query()); err != nil {
			HandleAPIError(w, r, err)
			return
		}
	}

	page, err := h.courseService.ListCourses(r.Context(), req.Filter())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toListCoursesResponse(page))
}

// GetCourse handles GET /courses/{id}. An unknown course is a 404 with an
// empty body.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	course, err := h.courseService.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			logger.FromContextOrDefault(r.Context(), h.logger).
				Debug("course not found", slog.String("course_id", id.String()))
			w.WriteHeader(http.StatusNotFound)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CourseDetailResponse{Course: toCourseResponse(course)})
}

// CreateCourse handles POST /courses.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestBody, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	course, err := h.courseService.CreateCourse(r.Context(), req.Title)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("course created", slog.String("course_id", course.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateCourseResponse{CourseID: course.ID})
}
