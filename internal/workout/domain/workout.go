package domain

import (
	"errors"
	"time"
)

// DefaultRestTime is applied to an entry that omits rest_time, in seconds
const DefaultRestTime = 60

var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutExercise is one entry of a workout. Duration and RestTime are seconds.
type WorkoutExercise struct {
	ExerciseID string  `json:"exercise_id" bson:"exercise_id"`
	Sets       int     `json:"sets" bson:"sets"`
	Reps       int     `json:"reps" bson:"reps"`
	Weight     float64 `json:"weight" bson:"weight"`
	Duration   int     `json:"duration" bson:"duration"`
	RestTime   int     `json:"rest_time" bson:"rest_time"`
	Notes      string  `json:"notes" bson:"notes"`
}

// Workout is owned by exactly one user. Duration is the total in minutes.
type Workout struct {
	ID        string            `json:"id" bson:"_id" gorm:"primaryKey"`
	UserID    string            `json:"user_id" bson:"user_id" gorm:"index:idx_workouts_user_date,priority:1;not null"`
	Name      string            `json:"name" bson:"name" gorm:"not null"`
	Date      time.Time         `json:"date" bson:"date" gorm:"index:idx_workouts_user_date,priority:2"`
	Exercises []WorkoutExercise `json:"exercises" bson:"exercises" gorm:"serializer:json"`
	Duration  int               `json:"duration" bson:"duration"`
	Notes     string            `json:"notes" bson:"notes"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}
