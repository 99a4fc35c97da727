package repository

import (
	"context"

	"fitness-backend/internal/coach/domain"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *domain.Conversation) error

	// ListByUser returns up to limit conversations, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Conversation, error)
}
