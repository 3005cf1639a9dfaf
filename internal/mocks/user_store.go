package mocks

import (
	"context"
	"database/sql"

	"github.com/coursedesk/course-api/internal/domain"
	"github.com/coursedesk/course-api/internal/store"
	"github.com/google/uuid"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Users is consulted by the default lookups, keyed by email
	Users map[string]*domain.User
	Err   error
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.Err != nil {
		return m.Err
	}
	if m.Users == nil {
		m.Users = map[string]*domain.User{}
	}
	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	m.Users[user.Email] = user
	return nil
}

// GetByID implements store.UserStore
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements store.UserStore
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if u, ok := m.Users[email]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

// WithTx implements store.UserStore
func (m *MockUserStore) WithTx(_ *sql.Tx) store.UserStore {
	return m
}
