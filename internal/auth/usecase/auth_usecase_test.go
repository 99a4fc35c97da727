package usecase

import (
	"context"
	"testing"
	"time"

	"fitness-backend/internal/auth/domain"
	"fitness-backend/internal/testsupport"
	"fitness-backend/pkg/logger"
	"fitness-backend/pkg/oauthsession"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc       *authUsecase
	users    *testsupport.UserRepo
	sessions *testsupport.SessionRepo
	resolver *testsupport.Resolver
	now      time.Time
}

func newFixture() *fixture {
	f := &fixture{
		users:    testsupport.NewUserRepo(),
		sessions: testsupport.NewSessionRepo(),
		resolver: testsupport.NewResolver(),
		now:      time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	f.uc = NewAuthUsecase(f.users, f.sessions, f.resolver, 7*24*time.Hour, logger.NewNop()).(*authUsecase)
	f.uc.SetClock(func() time.Time { return f.now })
	f.resolver.Sessions["sid-1"] = &oauthsession.SessionData{
		ID: "ext-1", Email: "ana@example.com", Name: "Ana", SessionToken: "tok-1",
	}
	return f
}

func TestExchangeSessionProvisionsUserOnFirstSight(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, token, err := f.uc.ExchangeSession(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, domain.ExperienceBeginner, user.ExperienceLevel)
	assert.Equal(t, []string{}, user.FitnessGoals)
	assert.NotEmpty(t, user.ID)

	session, err := f.sessions.FindActiveByToken(ctx, "tok-1", f.now)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, f.now.Add(7*24*time.Hour), session.ExpiresAt)
}

func TestExchangeSessionReusesUserAndAddsSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, _, err := f.uc.ExchangeSession(ctx, "sid-1")
	require.NoError(t, err)

	f.resolver.Sessions["sid-2"] = &oauthsession.SessionData{Email: "ana@example.com", Name: "Ana", SessionToken: "tok-2"}
	second, _, err := f.uc.ExchangeSession(ctx, "sid-2")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, f.sessions.Len())
}

func TestExchangeSessionErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, _, err := f.uc.ExchangeSession(ctx, "")
	assert.ErrorIs(t, err, domain.ErrSessionIDRequired)
	assert.Equal(t, 0, f.resolver.Calls)

	_, _, err = f.uc.ExchangeSession(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestAuthenticate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.uc.Authenticate(ctx, "never-issued")
	assert.ErrorIs(t, err, domain.ErrSessionExpiredOrInvalid)

	user, token, err := f.uc.ExchangeSession(ctx, "sid-1")
	require.NoError(t, err)

	got, err := f.uc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticateRejectsExpiredSessionStillStored(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, token, err := f.uc.ExchangeSession(ctx, "sid-1")
	require.NoError(t, err)

	f.now = f.now.Add(7 * 24 * time.Hour)
	_, err = f.uc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrSessionExpiredOrInvalid)
	assert.Equal(t, 1, f.sessions.Len())
}

func TestAuthenticateRejectsSessionOfMissingUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, token, err := f.uc.ExchangeSession(ctx, "sid-1")
	require.NoError(t, err)
	f.users.Delete(user.ID)

	_, err = f.uc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrSessionExpiredOrInvalid)
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, token, err := f.uc.ExchangeSession(ctx, "sid-1")
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(ctx, token))
	require.NoError(t, f.uc.Logout(ctx, token))

	_, err = f.uc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrSessionExpiredOrInvalid)
}
