package auth

import (
	"context"
	"time"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/google/uuid"
)

// JWTService issues and verifies the bearer tokens that carry a caller's identity.
type JWTService interface {
	// GenerateToken creates a signed access token for the user with the given role.
	GenerateToken(ctx context.Context, userID uuid.UUID, role domain.Role) (string, error)

	// ValidateToken verifies tokenString and extracts its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	// The role claim is passed through unchecked; authorization decides what
	// an unknown role means.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an access token.
type Claims struct {
	UserID    uuid.UUID
	Role      domain.Role
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
