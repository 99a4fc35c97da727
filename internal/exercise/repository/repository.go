package repository

import (
	"context"

	"fitness-backend/internal/exercise/domain"
)

// ExerciseRepository defines data access for the shared catalog
type ExerciseRepository interface {
	List(ctx context.Context, filter domain.Filter) ([]*domain.Exercise, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, exercises []*domain.Exercise) error
}
