package domain

import "time"

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

type User struct {
	ID              string          `json:"id" bson:"_id" gorm:"primaryKey"`
	Email           string          `json:"email" bson:"email" gorm:"uniqueIndex;not null"`
	Name            string          `json:"name" bson:"name"`
	Picture         *string         `json:"picture" bson:"picture"`
	FitnessGoals    []string        `json:"fitness_goals" bson:"fitness_goals" gorm:"serializer:json"`
	ExperienceLevel ExperienceLevel `json:"experience_level" bson:"experience_level" gorm:"default:beginner"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
}

// Session maps an opaque bearer token to a user until ExpiresAt.
// Expired rows are never swept; lookups filter on expiry instead.
type Session struct {
	ID           string    `json:"id" bson:"_id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" bson:"user_id" gorm:"index;not null"`
	SessionToken string    `json:"-" bson:"session_token" gorm:"index;not null"`
	ExpiresAt    time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func (Session) TableName() string {
	return "user_sessions"
}

// ProfileUpdate carries the optional fields of a profile edit. Nil means unchanged.
type ProfileUpdate struct {
	FitnessGoals    *[]string
	ExperienceLevel *ExperienceLevel
}

func (p ProfileUpdate) Empty() bool {
	return p.FitnessGoals == nil && p.ExperienceLevel == nil
}
