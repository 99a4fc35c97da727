package usecase

import (
	"context"

	"fitness-backend/internal/progress/domain"
	"fitness-backend/pkg/scalar"
)

// ProgressUsecase records and lists body snapshots
type ProgressUsecase interface {
	RecordProgress(ctx context.Context, userID string, input RecordProgressInput) (*domain.Progress, error)

	// ListProgress returns entries from the trailing window of days, newest first
	ListProgress(ctx context.Context, userID string, days int) ([]*domain.Progress, error)
}

type RecordProgressInput struct {
	Weight       *float64
	BodyFat      *float64
	Measurements scalar.Map
	Notes        string
}
