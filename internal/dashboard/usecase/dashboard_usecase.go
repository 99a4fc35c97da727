package usecase

import (
	"context"
	"time"

	"fitness-backend/internal/dashboard/domain"
	progressdomain "fitness-backend/internal/progress/domain"
	workoutdomain "fitness-backend/internal/workout/domain"
)

const (
	weekWindow         = 7 * 24 * time.Hour
	recentWorkoutLimit = 3
)

// WorkoutReader is the slice of workout storage the dashboard reads
type WorkoutReader interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int64, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*workoutdomain.Workout, error)
}

// ProgressReader is the slice of progress storage the dashboard reads
type ProgressReader interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]*progressdomain.Progress, error)
}

type DashboardUsecase interface {
	GetStats(ctx context.Context, userID string) (*domain.Stats, error)
}

type dashboardUsecase struct {
	workouts WorkoutReader
	progress ProgressReader
	now      func() time.Time
}

func NewDashboardUsecase(workouts WorkoutReader, progress ProgressReader) DashboardUsecase {
	return &dashboardUsecase{
		workouts: workouts,
		progress: progress,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *dashboardUsecase) SetClock(now func() time.Time) {
	u.now = now
}

// GetStats counts the week before the lifetime total. Workouts are never
// deleted, so a write landing between the two reads can only raise the total
// and workouts_this_week never exceeds total_workouts.
func (u *dashboardUsecase) GetStats(ctx context.Context, userID string) (*domain.Stats, error) {
	now := u.now()

	week, err := u.workouts.CountByUserBetween(ctx, userID, now.Add(-weekWindow), now)
	if err != nil {
		return nil, err
	}

	total, err := u.workouts.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	latest, err := u.progress.ListRecent(ctx, userID, 1)
	if err != nil {
		return nil, err
	}

	recent, err := u.workouts.ListByUser(ctx, userID, recentWorkoutLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*workoutdomain.Workout{}
	}

	stats := &domain.Stats{
		TotalWorkouts:    total,
		WorkoutsThisWeek: week,
		RecentWorkouts:   recent,
	}
	if len(latest) > 0 {
		stats.LatestProgress = latest[0]
	}
	return stats, nil
}
