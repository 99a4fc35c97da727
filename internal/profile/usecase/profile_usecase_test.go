package usecase

import (
	"context"
	"testing"

	authdomain "fitness-backend/internal/auth/domain"
	"fitness-backend/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileSetsOnlyProvidedFields(t *testing.T) {
	users := testsupport.NewUserRepo()
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &authdomain.User{ID: "u1", Email: "a@b.c", ExperienceLevel: authdomain.ExperienceBeginner, FitnessGoals: []string{"mobility"}}))
	uc := NewProfileUsecase(users)

	level := authdomain.ExperienceAdvanced
	require.NoError(t, uc.UpdateProfile(ctx, "u1", authdomain.ProfileUpdate{ExperienceLevel: &level}))

	user, err := users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, authdomain.ExperienceAdvanced, user.ExperienceLevel)
	assert.Equal(t, []string{"mobility"}, user.FitnessGoals)

	goals := []string{"strength", "endurance"}
	require.NoError(t, uc.UpdateProfile(ctx, "u1", authdomain.ProfileUpdate{FitnessGoals: &goals}))
	user, err = users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, goals, user.FitnessGoals)
	assert.Equal(t, authdomain.ExperienceAdvanced, user.ExperienceLevel)
}

func TestUpdateProfileRejectsUnknownLevel(t *testing.T) {
	users := testsupport.NewUserRepo()
	uc := NewProfileUsecase(users)

	level := authdomain.ExperienceLevel("elite")
	err := uc.UpdateProfile(context.Background(), "u1", authdomain.ProfileUpdate{ExperienceLevel: &level})
	assert.ErrorIs(t, err, authdomain.ErrInvalidExperienceLevel)
	assert.Zero(t, users.Calls())
}

func TestUpdateProfileEmptyIsNoop(t *testing.T) {
	users := testsupport.NewUserRepo()
	uc := NewProfileUsecase(users)

	require.NoError(t, uc.UpdateProfile(context.Background(), "u1", authdomain.ProfileUpdate{}))
	assert.Zero(t, users.Calls())
}
