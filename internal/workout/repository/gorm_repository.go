package repository

import (
	"context"
	"errors"
	"time"

	"fitness-backend/internal/workout/domain"

	"gorm.io/gorm"
)

// gormWorkoutRepository implements WorkoutRepository using GORM
type gormWorkoutRepository struct {
	db *gorm.DB
}

func NewGormWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &gormWorkoutRepository{db: db}
}

func (r *gormWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *gormWorkoutRepository) FindByIDForUser(ctx context.Context, id, userID string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *gormWorkoutRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Workout, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	workouts := []*domain.Workout{}
	err := query.Find(&workouts).Error
	return workouts, err
}

func (r *gormWorkoutRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Workout{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func (r *gormWorkoutRepository) CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Workout{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Count(&total).Error
	return total, err
}
