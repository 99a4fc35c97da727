package domain

import (
	progressdomain "fitness-backend/internal/progress/domain"
	workoutdomain "fitness-backend/internal/workout/domain"
)

// Stats is the read-only summary shown on the dashboard. The fields come from
// independent queries and are not read atomically.
type Stats struct {
	TotalWorkouts    int64                    `json:"total_workouts"`
	WorkoutsThisWeek int64                    `json:"workouts_this_week"`
	LatestProgress   *progressdomain.Progress `json:"latest_progress"`
	RecentWorkouts   []*workoutdomain.Workout `json:"recent_workouts"`
}
