package main

import (
	"fmt"
	"net/http"

	"github.com/coursedesk/course-api/internal/api"
	apimw "github.com/coursedesk/course-api/internal/api/middleware"
	"github.com/coursedesk/course-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// setupRouter builds the HTTP handler tree.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimw.TraceMiddleware(app.logger))

	authHandler, err := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		&app.config.Auth,
		app.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth handler: %w", err)
	}
	courseHandler := api.NewCourseHandler(app.courseService, app.logger)
	authMiddleware := apimw.NewAuthMiddleware(app.jwtService)

	r.Post("/sessions", authHandler.Login)

	r.Route("/courses", func(r chi.Router) {
		// The listing validates its query before authenticating, so a
		// malformed query is a 400 regardless of credentials.
		r.With(
			courseHandler.ValidateListQuery,
			authMiddleware.Authenticate,
			apimw.RequireRole(domain.RoleManager),
		).Get("/", courseHandler.ListCourses)

		// Detail and creation are public.
		r.Get("/{id}", courseHandler.GetCourse)
		r.Post("/", courseHandler.CreateCourse)
	})

	r.Method(http.MethodGet, "/health", api.NewHealthHandler(app.db))

	if app.config.Server.IsDevelopment() {
		r.Get("/docs", api.ServeDocsPage)
		r.Get("/docs/openapi.json", api.ServeOpenAPISpec)
	}

	return otelhttp.NewHandler(r, "course-api",
		otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
			return "HTTP " + req.Method
		})), nil
}
