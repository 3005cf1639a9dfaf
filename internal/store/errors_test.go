package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "wrapped ErrNotFound", err: fmt.Errorf("lookup: %w", ErrNotFound), expected: true},
		{name: "ErrCourseNotFound", err: ErrCourseNotFound, expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{
			name:     "StoreError wrapping ErrCourseNotFound",
			err:      NewStoreError("course", "get", "no row", ErrCourseNotFound),
			expected: true,
		},
		{name: "duplicate is not not-found", err: ErrEmailExists, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrEnrollmentExists)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	inner := errors.New("connection reset")
	err := NewStoreError("course", "list", "count query failed", inner)

	assert.Equal(t, "list operation on course failed: count query failed: connection reset", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewStoreError("user", "create", "invalid", nil)
	assert.Equal(t, "create operation on user failed: invalid", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
