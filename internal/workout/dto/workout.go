package dto

import "fitness-backend/internal/workout/domain"

type WorkoutExerciseRequest struct {
	ExerciseID string  `json:"exercise_id" binding:"required"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Duration   int     `json:"duration"`
	RestTime   *int    `json:"rest_time"`
	Notes      string  `json:"notes"`
}

type CreateWorkoutRequest struct {
	Name      string                   `json:"name" binding:"required"`
	Exercises []WorkoutExerciseRequest `json:"exercises" binding:"required,dive"`
	Duration  int                      `json:"duration"`
	Notes     string                   `json:"notes"`
}

// Entries converts the request entries, applying the default rest time
func (r CreateWorkoutRequest) Entries() []domain.WorkoutExercise {
	entries := make([]domain.WorkoutExercise, 0, len(r.Exercises))
	for _, e := range r.Exercises {
		rest := domain.DefaultRestTime
		if e.RestTime != nil {
			rest = *e.RestTime
		}
		entries = append(entries, domain.WorkoutExercise{
			ExerciseID: e.ExerciseID,
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			Duration:   e.Duration,
			RestTime:   rest,
			Notes:      e.Notes,
		})
	}
	return entries
}
