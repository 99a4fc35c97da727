package repository

import (
	"context"
	"time"

	"fitness-backend/internal/workout/domain"
)

// WorkoutRepository defines data access for workouts. Every read is scoped
// by the owning user id.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error

	// FindByIDForUser returns nil, nil when the workout is missing or owned
	// by someone else
	FindByIDForUser(ctx context.Context, id, userID string) (*domain.Workout, error)

	// ListByUser returns up to limit workouts, newest date first
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Workout, error)

	CountByUser(ctx context.Context, userID string) (int64, error)

	// CountByUserBetween counts workouts with from <= date <= to
	CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int64, error)
}
