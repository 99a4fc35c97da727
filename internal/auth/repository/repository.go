package repository

import (
	"context"
	"time"

	"fitness-backend/internal/auth/domain"
)

// UserRepository defines data access for users
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail returns nil, nil when no user has the email
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID returns nil, nil when the user does not exist
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// UpdateProfile applies only the non-nil fields of update
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error
}

// SessionRepository defines data access for session tokens
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error

	// FindActiveByToken returns the session for token whose expiry is after now,
	// or nil, nil when there is none
	FindActiveByToken(ctx context.Context, token string, now time.Time) (*domain.Session, error)

	// DeleteByToken removes every session row carrying token. Deleting an
	// unknown token is not an error.
	DeleteByToken(ctx context.Context, token string) error
}
