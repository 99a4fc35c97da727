package repository

import (
	"context"
	"time"

	"fitness-backend/internal/progress/domain"

	"gorm.io/gorm"
)

type gormProgressRepository struct {
	db *gorm.DB
}

func NewGormProgressRepository(db *gorm.DB) ProgressRepository {
	return &gormProgressRepository{db: db}
}

func (r *gormProgressRepository) Create(ctx context.Context, progress *domain.Progress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *gormProgressRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.Progress, error) {
	entries := []*domain.Progress{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *gormProgressRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Progress, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := []*domain.Progress{}
	err := query.Find(&entries).Error
	return entries, err
}
