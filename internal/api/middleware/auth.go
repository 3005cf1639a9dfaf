package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coursedesk/course-api/internal/api/shared"
	"github.com/coursedesk/course-api/internal/platform/logger"
	"github.com/coursedesk/course-api/internal/redact"
	"github.com/coursedesk/course-api/internal/service/auth"
)

// Messages returned by the authentication middleware.
const (
	MsgAuthHeaderRequired = "Authorization header required"
	MsgInvalidAuthFormat  = "Invalid authorization format"
	MsgInvalidToken       = "Invalid token"
	MsgTokenExpired       = "Token expired"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate verifies the bearer token in the Authorization header and
// stores the caller's Identity in the request context. It performs no store
// I/O. Every verification failure is answered with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAuthHeaderRequired)
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidAuthFormat)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenExpired)
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			default:
				logger.FromContext(r.Context()).Error("failed to validate token",
					slog.String("error", redact.Error(err)))
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			}
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
