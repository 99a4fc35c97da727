package domain

import (
	"errors"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrAIService wraps every failure of the upstream chat model
var ErrAIService = errors.New("AI service error")

type Message struct {
	Role      string `json:"role" bson:"role"`
	Content   string `json:"content" bson:"content"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

// Conversation records one question and answer exchanged with the coach
type Conversation struct {
	ID        string    `json:"id" bson:"_id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" bson:"user_id" gorm:"index;not null"`
	SessionID string    `json:"session_id" bson:"session_id"`
	Messages  []Message `json:"messages" bson:"messages" gorm:"serializer:json"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"index"`
}

func (Conversation) TableName() string {
	return "ai_conversations"
}

// SessionIDFor names the single running coach thread of a user
func SessionIDFor(userID string) string {
	return "fitness_coach_" + userID
}
