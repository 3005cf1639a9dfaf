package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/coursedesk/course-api/internal/api/shared"
	"github.com/coursedesk/course-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const canonicalUUIDLength = 36

// getPathUUID extracts and parses a UUID path parameter. Missing and
// malformed values are returned as domain validation errors.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	// uuid.Parse also accepts braced, urn and unhyphenated forms; only the
	// canonical 36-character form is allowed.
	if len(pathParam) != canonicalUUIDLength {
		return uuid.Nil, domain.NewValidationError(paramName, "must be a valid UUID", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "must be a valid UUID", domain.ErrInvalidID)
	}

	return id, nil
}

// parseListCoursesRequest reads and validates the listing query string.
// Absent parameters take their defaults; present ones are never clamped.
func parseListCoursesRequest(query url.Values) (ListCoursesRequest, error) {
	req := ListCoursesRequest{
		Search:  query.Get("search"),
		OrderBy: query.Get("orderBy"),
		Page:    1,
	}

	if query.Has("page") {
		page, err := strconv.Atoi(query.Get("page"))
		if err != nil {
			return ListCoursesRequest{}, domain.NewValidationError(
				"page", "must be an integer", domain.ErrValidation)
		}
		req.Page = page
	}

	if err := shared.ValidateRequest(&req); err != nil {
		return ListCoursesRequest{}, err
	}
	return req, nil
}
