package usecase

import (
	"context"

	authdomain "fitness-backend/internal/auth/domain"
	authrepo "fitness-backend/internal/auth/repository"
)

// ProfileUsecase edits the caller's own user record
type ProfileUsecase interface {
	// UpdateProfile sets only the provided fields
	UpdateProfile(ctx context.Context, userID string, update authdomain.ProfileUpdate) error
}

type profileUsecase struct {
	userRepo authrepo.UserRepository
}

func NewProfileUsecase(userRepo authrepo.UserRepository) ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, update authdomain.ProfileUpdate) error {
	if update.ExperienceLevel != nil && !update.ExperienceLevel.Valid() {
		return authdomain.ErrInvalidExperienceLevel
	}
	if update.Empty() {
		return nil
	}
	return u.userRepo.UpdateProfile(ctx, userID, update)
}
