package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coursedesk/course-api/internal/api/shared"
	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/platform/logger"
)

// Messages returned by the role gate.
const (
	MsgAuthenticationRequired = "Authentication required"
	MsgInsufficientRole       = "Insufficient permissions"
)

// RequireRole returns middleware admitting only callers whose verified
// identity carries exactly role. It must be mounted after
// AuthMiddleware.Authenticate. A missing identity is answered with 401, any
// other role (including one outside the known set) with 403.
//
// It panics if role itself is not a known role, so a misconfigured route
// fails at startup instead of at request time.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	if !role.Valid() {
		// ALLOW-PANIC: route setup error
		panic(fmt.Sprintf("middleware: RequireRole called with unknown role %q", role))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := shared.IdentityFromContext(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAuthenticationRequired)
				return
			}

			if !identity.Role.Valid() || identity.Role != role {
				logger.FromContext(r.Context()).Debug("role check failed",
					slog.String("user_id", identity.UserID.String()),
					slog.String("role", string(identity.Role)),
					slog.String("required_role", string(role)))
				shared.RespondWithError(w, r, http.StatusForbidden, MsgInsufficientRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
