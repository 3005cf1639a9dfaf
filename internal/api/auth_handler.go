package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursedesk/course-api/internal/api/shared"
	"github.com/coursedesk/course-api/internal/config"
	"github.com/coursedesk/course-api/internal/platform/logger"
	"github.com/coursedesk/course-api/internal/service/auth"
	"github.com/coursedesk/course-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger

	// dummyHash is compared against when no user matches, at the same bcrypt
	// cost as stored hashes.
	dummyHash string
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// authConfig supplies the bcrypt cost of stored hashes; nil means the default.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	authConfig *config.AuthConfig,
	logger *slog.Logger,
) (*AuthHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cost := 0
	if authConfig != nil {
		cost = authConfig.BcryptCost
	}
	dummyHash, err := auth.DummyPasswordHash(cost)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With("component", "auth_handler"),
		dummyHash:        dummyHash,
	}, nil
}

// Login handles POST /sessions. Unknown emails and wrong passwords get the
// same 401 so the response does not reveal which accounts exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestBody, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = h.passwordVerifier.Compare(h.dummyHash, req.Password)
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidCredentials, err,
				shared.WithElevatedLogLevel())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnexpectedError, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidCredentials, err,
			shared.WithElevatedLogLevel())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Role)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnexpectedError, err)
		return
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
