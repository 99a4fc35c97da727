package usecase

import (
	"context"

	"fitness-backend/internal/workout/domain"
)

// WorkoutUsecase defines workout logging for the authenticated user
type WorkoutUsecase interface {
	// CreateWorkout stores a workout owned by userID with a server-assigned date
	CreateWorkout(ctx context.Context, userID string, input CreateWorkoutInput) (*domain.Workout, error)

	// GetWorkout returns ErrWorkoutNotFound for missing and foreign-owned ids alike
	GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error)

	// ListWorkouts returns up to limit workouts, newest first
	ListWorkouts(ctx context.Context, userID string, limit int) ([]*domain.Workout, error)
}

type CreateWorkoutInput struct {
	Name      string
	Exercises []domain.WorkoutExercise
	Duration  int
	Notes     string
}
