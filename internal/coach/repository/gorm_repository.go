package repository

import (
	"context"

	"fitness-backend/internal/coach/domain"

	"gorm.io/gorm"
)

type gormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) ConversationRepository {
	return &gormConversationRepository{db: db}
}

func (r *gormConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *gormConversationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Conversation, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	conversations := []*domain.Conversation{}
	err := query.Find(&conversations).Error
	return conversations, err
}
