package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/coursedesk/course-api/internal/api/shared"
	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/service"
	"github.com/coursedesk/course-api/internal/service/auth"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/go-playground/validator/v10"
)

// Client-facing messages.
const (
	MsgValidationFailed   = "Validation failed"
	MsgInvalidRequestBody = "Invalid request body"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUnexpectedError    = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrPasswordMismatch):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.As(err, &verrs),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrCourseTitleEmpty),
		errors.Is(err, domain.ErrCourseTitleTooShort),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for err.
func GetSafeErrorMessage(err error) string {
	switch MapErrorToStatusCode(err) {
	case http.StatusUnauthorized:
		return "Invalid token"
	case http.StatusForbidden:
		return "Insufficient permissions"
	case http.StatusNotFound:
		if errors.Is(err, service.ErrCourseNotFound) || errors.Is(err, store.ErrCourseNotFound) {
			return "Course not found"
		}
		return "Resource not found"
	case http.StatusConflict:
		if errors.Is(err, store.ErrEmailExists) {
			return "Email already exists"
		}
		return "Resource already exists"
	case http.StatusBadRequest:
		return MsgValidationFailed
	default:
		return MsgUnexpectedError
	}
}

// ValidationFields extracts per-field messages from a validation error.
// It returns nil when err carries no field information.
func ValidationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = validationTagMessage(fe)
			}
		}
		return fields
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return map[string]string{domainErr.Field: domainErr.Message}
	}

	switch {
	case errors.Is(err, domain.ErrCourseTitleEmpty):
		return map[string]string{"title": "is required"}
	case errors.Is(err, domain.ErrCourseTitleTooShort):
		return map[string]string{
			"title": fmt.Sprintf("must be at least %d characters", domain.MinCourseTitleLength),
		}
	}
	return nil
}

// validationTagMessage renders one validator failure as a short phrase.
func validationTagMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}

// HandleAPIError writes the response for err: validation errors become 400
// with field details, everything else gets its mapped status and a safe
// message. The full error is logged after redaction.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	if status == http.StatusBadRequest {
		if fields := ValidationFields(err); fields != nil {
			shared.RespondWithValidationError(w, r, MsgValidationFailed, fields)
			return
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
