package usecase

import (
	"context"
	"time"

	"fitness-backend/internal/workout/domain"
	"fitness-backend/internal/workout/repository"
	"fitness-backend/pkg/events"
	"fitness-backend/pkg/logger"
	"fitness-backend/pkg/metrics"

	"github.com/google/uuid"
)

// DefaultListLimit applies when the caller passes no positive limit
const DefaultListLimit = 20

type workoutUsecase struct {
	repo      repository.WorkoutRepository
	publisher events.Publisher
	topic     string
	log       logger.Logger
	now       func() time.Time
}

func NewWorkoutUsecase(repo repository.WorkoutRepository, publisher events.Publisher, topic string, log logger.Logger) WorkoutUsecase {
	return &workoutUsecase{
		repo:      repo,
		publisher: publisher,
		topic:     topic,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *workoutUsecase) SetClock(now func() time.Time) {
	u.now = now
}

func (u *workoutUsecase) CreateWorkout(ctx context.Context, userID string, input CreateWorkoutInput) (*domain.Workout, error) {
	// mongo keeps millisecond precision; truncate so reads match the response
	now := u.now().Truncate(time.Millisecond)

	exercises := input.Exercises
	if exercises == nil {
		exercises = []domain.WorkoutExercise{}
	}

	workout := &domain.Workout{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      input.Name,
		Date:      now,
		Exercises: exercises,
		Duration:  input.Duration,
		Notes:     input.Notes,
		CreatedAt: now,
	}

	if err := u.repo.Create(ctx, workout); err != nil {
		return nil, err
	}

	event := events.WorkoutLogged{
		WorkoutID:     workout.ID,
		UserID:        workout.UserID,
		Name:          workout.Name,
		Date:          workout.Date,
		ExerciseCount: len(workout.Exercises),
		Duration:      workout.Duration,
	}
	if err := u.publisher.Publish(ctx, u.topic, userID, event); err != nil {
		metrics.RecordEventPublishFailure(u.topic)
		u.log.Warnf("publish workout %s: %v", workout.ID, err)
	}

	return workout, nil
}

func (u *workoutUsecase) GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	workout, err := u.repo.FindByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, domain.ErrWorkoutNotFound
	}
	return workout, nil
}

func (u *workoutUsecase) ListWorkouts(ctx context.Context, userID string, limit int) ([]*domain.Workout, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	workouts, err := u.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []*domain.Workout{}
	}
	return workouts, nil
}
