package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursedesk/course-api/internal/api"
	"github.com/coursedesk/course-api/internal/config"
	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/mocks"
	"github.com/coursedesk/course-api/internal/service/auth"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	managerToken = "manager-token"
	studentToken = "student-token"
)

type routerFixture struct {
	handler http.Handler
	courses *mocks.MockCourseService
	dbMock  sqlmock.Sqlmock
}

func newRouterFixture(t *testing.T, environment string) *routerFixture {
	t.Helper()

	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	jwt := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			switch token {
			case managerToken:
				return &auth.Claims{UserID: uuid.New(), Role: domain.RoleManager}, nil
			case studentToken:
				return &auth.Claims{UserID: uuid.New(), Role: domain.RoleStudent}, nil
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}
	courses := &mocks.MockCourseService{Page: &store.CoursePage{
		Courses: []domain.CourseSummary{{ID: uuid.New(), Title: "Go Basics", Enrollments: 2}},
		Total:   1,
	}}

	app := &application{
		config: &config.Config{
			Server: config.ServerConfig{Environment: environment},
			Auth:   config.AuthConfig{BcryptCost: bcrypt.MinCost},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		db:     db,

		userStore:        &mocks.MockUserStore{},
		jwtService:       jwt,
		passwordVerifier: &mocks.MockPasswordVerifier{},
		courseService:    courses,
	}

	handler, err := app.setupRouter()
	require.NoError(t, err)

	return &routerFixture{handler: handler, courses: courses, dbMock: dbMock}
}

func (f *routerFixture) do(method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ListCoursesAccessMatrix(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		token      string
		wantStatus int
		wantCalls  int
	}{
		{name: "no token", target: "/courses", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", target: "/courses", token: "forged", wantStatus: http.StatusUnauthorized},
		{name: "student", target: "/courses", token: studentToken, wantStatus: http.StatusForbidden},
		{name: "manager", target: "/courses", token: managerToken, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "invalid query without token", target: "/courses?orderBy=price", wantStatus: http.StatusBadRequest},
		{name: "invalid page as manager", target: "/courses?page=0", token: managerToken, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, config.EnvProduction)

			rec := f.do(http.MethodGet, tt.target, tt.token, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, f.courses.ListCalls)
		})
	}
}

func TestRouter_ManagerListing(t *testing.T) {
	f := newRouterFixture(t, config.EnvProduction)

	rec := f.do(http.MethodGet, "/courses?search=go&orderBy=id&page=1", managerToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.ListCoursesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Courses, 1)
	assert.Equal(t, 2, body.Courses[0].Enrollments)
	assert.Equal(t, store.CourseOrderByID, f.courses.LastFilter.OrderBy)
	assert.Equal(t, "go", f.courses.LastFilter.Search)
}

func TestRouter_DetailAndCreateArePublic(t *testing.T) {
	f := newRouterFixture(t, config.EnvProduction)
	courseID := uuid.New()
	f.courses.Course = &domain.Course{ID: courseID, Title: "Go Basics"}

	rec := f.do(http.MethodGet, "/courses/"+courseID.String(), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/courses", "", strings.NewReader(`{"title":"Go Basics"}`))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), courseID.String())
}

func TestRouter_ErrorBodiesCarryTraceID(t *testing.T) {
	f := newRouterFixture(t, config.EnvProduction)

	rec := f.do(http.MethodGet, "/courses", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body struct {
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.TraceID)
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t, config.EnvProduction)
	f.dbMock.ExpectPing()

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestRouter_DocsOnlyInDevelopment(t *testing.T) {
	dev := newRouterFixture(t, config.EnvDevelopment)
	assert.Equal(t, http.StatusOK, dev.do(http.MethodGet, "/docs", "", nil).Code)
	assert.Equal(t, http.StatusOK, dev.do(http.MethodGet, "/docs/openapi.json", "", nil).Code)

	prod := newRouterFixture(t, config.EnvProduction)
	assert.Equal(t, http.StatusNotFound, prod.do(http.MethodGet, "/docs", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, prod.do(http.MethodGet, "/docs/openapi.json", "", nil).Code)
}
