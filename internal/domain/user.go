package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Password length bounds for plaintext passwords.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt's practical limit
)

// Common validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword    = errors.New("password cannot be empty")
)

// User is a registered user. Role is the only attribute consulted for authorization.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only set before the store hashes it
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
}

// NewUser creates a new User with a fresh ID.
// The plaintext password is kept on the struct; the user store hashes it on create.
func NewUser(name, email, password string, role Role) (*User, error) {
	user := &User{
		ID:       uuid.New(),
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
		Role:     role,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store only carry the hash
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format: a non-empty
// local part, an @, and a domain containing a dot that is neither first nor last.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
