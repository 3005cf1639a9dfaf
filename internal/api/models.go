package api

import (
	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
)

// ListCoursesRequest is the validated query string of GET /courses.
type ListCoursesRequest struct {
	Search  string `json:"search"`
	OrderBy string `json:"orderBy" validate:"omitempty,oneof=id title"`
	// Upper bound is store.MaxCoursePage.
	Page int `json:"page" validate:"gte=1,lte=214748364"`
}

// Filter converts the request into the store's listing filter.
func (r ListCoursesRequest) Filter() store.CourseFilter {
	return store.CourseFilter{
		Search:  r.Search,
		OrderBy: store.CourseOrderField(r.OrderBy),
		Page:    r.Page,
	}.Normalize()
}

// CourseSummaryResponse is one row of the course listing.
type CourseSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Enrollments int       `json:"enrollments"`
}

// ListCoursesResponse is the body of a successful GET /courses.
type ListCoursesResponse struct {
	Courses []CourseSummaryResponse `json:"courses"`
	Total   int                     `json:"total"`
}

// CourseResponse is a full course. Description is serialized as null when unset.
type CourseResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
}

// CourseDetailResponse is the body of a successful GET /courses/{id}.
type CourseDetailResponse struct {
	Course CourseResponse `json:"course"`
}

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Title string `json:"title" validate:"required,min=5"`
}

// CreateCourseResponse is the body of a successful POST /courses.
type CreateCourseResponse struct {
	CourseID uuid.UUID `json:"courseId"`
}

// LoginRequest is the body of POST /sessions.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body of a successful POST /sessions.
type LoginResponse struct {
	Token string `json:"token"`
}

func toListCoursesResponse(page *store.CoursePage) ListCoursesResponse {
	courses := make([]CourseSummaryResponse, 0, len(page.Courses))
	for _, c := range page.Courses {
		courses = append(courses, CourseSummaryResponse{
			ID:          c.ID,
			Title:       c.Title,
			Enrollments: c.Enrollments,
		})
	}
	return ListCoursesResponse{Courses: courses, Total: page.Total}
}

func toCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
	}
}
