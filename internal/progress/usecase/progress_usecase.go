package usecase

import (
	"context"
	"time"

	"fitness-backend/internal/progress/domain"
	"fitness-backend/internal/progress/repository"
	"fitness-backend/pkg/events"
	"fitness-backend/pkg/logger"
	"fitness-backend/pkg/metrics"
	"fitness-backend/pkg/scalar"

	"github.com/google/uuid"
)

// DefaultWindowDays applies when GET /progress has no days parameter
const DefaultWindowDays = 90

type progressUsecase struct {
	repo      repository.ProgressRepository
	publisher events.Publisher
	topic     string
	log       logger.Logger
	now       func() time.Time
}

func NewProgressUsecase(repo repository.ProgressRepository, publisher events.Publisher, topic string, log logger.Logger) ProgressUsecase {
	return &progressUsecase{
		repo:      repo,
		publisher: publisher,
		topic:     topic,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *progressUsecase) SetClock(now func() time.Time) {
	u.now = now
}

func (u *progressUsecase) RecordProgress(ctx context.Context, userID string, input RecordProgressInput) (*domain.Progress, error) {
	measurements := input.Measurements
	if measurements == nil {
		measurements = scalar.Map{}
	}

	progress := &domain.Progress{
		ID:           uuid.New().String(),
		UserID:       userID,
		Date:         u.now().Truncate(time.Millisecond),
		Weight:       input.Weight,
		BodyFat:      input.BodyFat,
		Measurements: measurements,
		Notes:        input.Notes,
	}

	if err := u.repo.Create(ctx, progress); err != nil {
		return nil, err
	}

	event := events.ProgressRecorded{
		ProgressID: progress.ID,
		UserID:     progress.UserID,
		Date:       progress.Date,
		Weight:     progress.Weight,
		BodyFat:    progress.BodyFat,
	}
	if err := u.publisher.Publish(ctx, u.topic, userID, event); err != nil {
		metrics.RecordEventPublishFailure(u.topic)
		u.log.Warnf("publish progress %s: %v", progress.ID, err)
	}

	return progress, nil
}

func (u *progressUsecase) ListProgress(ctx context.Context, userID string, days int) ([]*domain.Progress, error) {
	since := u.now().Add(-time.Duration(days) * 24 * time.Hour)
	entries, err := u.repo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Progress{}
	}
	return entries, nil
}
