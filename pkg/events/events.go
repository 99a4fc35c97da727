// Package events publishes domain events about logged training data.
package events

import (
	"context"
	"time"
)

// WorkoutLogged is emitted once a workout has been stored.
type WorkoutLogged struct {
	WorkoutID     string    `json:"workout_id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Date          time.Time `json:"date"`
	ExerciseCount int       `json:"exercise_count"`
	Duration      int       `json:"duration"`
}

// ProgressRecorded is emitted once a progress snapshot has been stored.
type ProgressRecorded struct {
	ProgressID string    `json:"progress_id"`
	UserID     string    `json:"user_id"`
	Date       time.Time `json:"date"`
	Weight     *float64  `json:"weight,omitempty"`
	BodyFat    *float64  `json:"body_fat,omitempty"`
}

// Topics names the destinations for each event type.
type Topics struct {
	Workouts string
	Progress string
}

func NewTopics(prefix string) Topics {
	if prefix == "" {
		prefix = "fitness"
	}
	return Topics{
		Workouts: prefix + ".workouts",
		Progress: prefix + ".progress",
	}
}

// Publisher delivers a JSON-encoded event keyed by the owning user.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, event interface{}) error
	Close() error
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, interface{}) error { return nil }
func (NoopPublisher) Close() error                                              { return nil }
