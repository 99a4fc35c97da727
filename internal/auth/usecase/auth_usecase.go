package usecase

import (
	"context"
	"fmt"
	"time"

	"fitness-backend/internal/auth/domain"
	"fitness-backend/internal/auth/repository"
	"fitness-backend/pkg/logger"
	"fitness-backend/pkg/metrics"

	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	resolver    OAuthSessionResolver
	sessionTTL  time.Duration
	log         logger.Logger
	now         func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, resolver OAuthSessionResolver, sessionTTL time.Duration, log logger.Logger) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		resolver:    resolver,
		sessionTTL:  sessionTTL,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source used for session expiry
func (u *authUsecase) SetClock(now func() time.Time) {
	u.now = now
}

func (u *authUsecase) ExchangeSession(ctx context.Context, sessionID string) (*domain.User, string, error) {
	if sessionID == "" {
		return nil, "", domain.ErrSessionIDRequired
	}

	data, err := u.resolver.Resolve(ctx, sessionID)
	if err != nil {
		metrics.RecordSessionExchange("rejected")
		u.log.Errorf("session exchange failed: %v", err)
		return nil, "", fmt.Errorf("%w: %v", domain.ErrUpstreamAuth, err)
	}

	user, err := u.userRepo.FindByEmail(ctx, data.Email)
	if err != nil {
		metrics.RecordSessionExchange("error")
		return nil, "", err
	}

	if user == nil {
		user = &domain.User{
			ID:              uuid.New().String(),
			Email:           data.Email,
			Name:            data.Name,
			Picture:         data.Picture,
			FitnessGoals:    []string{},
			ExperienceLevel: domain.ExperienceBeginner,
			CreatedAt:       u.now(),
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			metrics.RecordSessionExchange("error")
			return nil, "", err
		}
		u.log.Infow("provisioned user", "user_id", user.ID)
	}

	now := u.now()
	session := &domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		SessionToken: data.SessionToken,
		ExpiresAt:    now.Add(u.sessionTTL),
		CreatedAt:    now,
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		metrics.RecordSessionExchange("error")
		return nil, "", err
	}

	metrics.RecordSessionExchange("success")
	return user, data.SessionToken, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := u.sessionRepo.FindActiveByToken(ctx, token, u.now())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionExpiredOrInvalid
	}

	user, err := u.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrSessionExpiredOrInvalid
	}
	return user, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	return u.sessionRepo.DeleteByToken(ctx, token)
}
