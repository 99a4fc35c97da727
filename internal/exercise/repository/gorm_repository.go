package repository

import (
	"context"

	"fitness-backend/internal/exercise/domain"

	"gorm.io/gorm"
)

type gormExerciseRepository struct {
	db *gorm.DB
}

func NewGormExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &gormExerciseRepository{db: db}
}

func (r *gormExerciseRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Exercise, error) {
	query := r.db.WithContext(ctx).Model(&domain.Exercise{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	exercises := []*domain.Exercise{}
	err := query.Order("name ASC").Find(&exercises).Error
	return exercises, err
}

func (r *gormExerciseRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Exercise{}).Count(&total).Error
	return total, err
}

func (r *gormExerciseRepository) InsertMany(ctx context.Context, exercises []*domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&exercises).Error
}
