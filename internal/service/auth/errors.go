package auth

import "errors"

// Token verification errors. ValidateToken only ever returns one of these,
// so callers never see parser internals.
var (
	// ErrInvalidToken indicates the token is malformed, signed with another key
	// or algorithm, or carries unusable claims.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf or iat in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")
)

// ErrPasswordMismatch is returned by PasswordVerifier when the plaintext does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")
