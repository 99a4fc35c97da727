package repository

import (
	"context"
	"time"

	"fitness-backend/internal/progress/domain"
)

// ProgressRepository defines data access for progress snapshots
type ProgressRepository interface {
	Create(ctx context.Context, progress *domain.Progress) error

	// ListSince returns entries with date >= since, newest first
	ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.Progress, error)

	// ListRecent returns up to limit entries, newest first
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Progress, error)
}
