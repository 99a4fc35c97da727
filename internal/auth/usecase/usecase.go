package usecase

import (
	"context"

	"fitness-backend/internal/auth/domain"
	"fitness-backend/pkg/oauthsession"
)

// AuthUsecase covers session exchange, request authentication and logout
type AuthUsecase interface {
	// ExchangeSession resolves an external session id, provisions the user on
	// first sight and stores a fresh session for the returned token
	ExchangeSession(ctx context.Context, sessionID string) (*domain.User, string, error)

	// Authenticate resolves the user owning a non-expired session token
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// Logout deletes the session for token. Unknown tokens are not an error.
	Logout(ctx context.Context, token string) error
}

// OAuthSessionResolver turns an external session id into an identity
type OAuthSessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*oauthsession.SessionData, error)
}
