package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier compares a stored hash with a candidate plaintext.
type PasswordVerifier interface {
	// Compare returns nil on a match and ErrPasswordMismatch otherwise.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

var _ PasswordVerifier = (*BcryptVerifier)(nil)

// Compare implements PasswordVerifier.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	// Unparseable hashes are treated as a mismatch by callers but keep the cause
	return fmt.Errorf("%w: %v", ErrPasswordMismatch, err)
}

// DummyPasswordHash returns a bcrypt hash of a random secret at the given
// cost. Comparing a login attempt against it takes as long as checking a
// real account, so lookups that find no user can spend the same time.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func DummyPasswordHash(cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate dummy password hash: %w", err)
	}
	return string(hash), nil
}
