package usecase

import (
	"context"
	"fmt"
	"time"

	authdomain "fitness-backend/internal/auth/domain"
	"fitness-backend/internal/coach/domain"
	"fitness-backend/internal/coach/repository"
	progressdomain "fitness-backend/internal/progress/domain"
	workoutdomain "fitness-backend/internal/workout/domain"
	"fitness-backend/pkg/ai"
	"fitness-backend/pkg/logger"
	"fitness-backend/pkg/metrics"
	"fitness-backend/pkg/scalar"

	"github.com/google/uuid"
)

const (
	recentWorkoutLimit  = 5
	recentProgressLimit = 3

	// DefaultConversationLimit applies to GET /ai/conversations
	DefaultConversationLimit = 20
)

type WorkoutLister interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*workoutdomain.Workout, error)
}

type ProgressLister interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]*progressdomain.Progress, error)
}

// CoachUsecase forwards questions to the chat model with the user's training context
type CoachUsecase interface {
	Ask(ctx context.Context, user *authdomain.User, question string, extra scalar.Map) (string, error)
	ListConversations(ctx context.Context, userID string, limit int) ([]*domain.Conversation, error)
}

type coachUsecase struct {
	provider      ai.ChatCompletionProvider
	workouts      WorkoutLister
	progress      ProgressLister
	conversations repository.ConversationRepository
	log           logger.Logger
	now           func() time.Time
}

// NewCoachUsecase creates a coach. A nil provider makes every Ask fail with ErrAIService.
func NewCoachUsecase(provider ai.ChatCompletionProvider, workouts WorkoutLister, progress ProgressLister, conversations repository.ConversationRepository, log logger.Logger) CoachUsecase {
	return &coachUsecase{
		provider:      provider,
		workouts:      workouts,
		progress:      progress,
		conversations: conversations,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *coachUsecase) Ask(ctx context.Context, user *authdomain.User, question string, extra scalar.Map) (string, error) {
	if u.provider == nil {
		return "", fmt.Errorf("%w: no chat provider configured", domain.ErrAIService)
	}

	workouts, err := u.workouts.ListByUser(ctx, user.ID, recentWorkoutLimit)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIService, err)
	}
	progress, err := u.progress.ListRecent(ctx, user.ID, recentProgressLimit)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIService, err)
	}

	sessionID := domain.SessionIDFor(user.ID)
	asked := u.now()
	answer, err := u.provider.Complete(ctx, ai.ChatRequest{
		SessionID:     sessionID,
		SystemMessage: BuildSystemPrompt(user, workouts, progress, extra),
		UserMessage:   question,
	})
	if err != nil {
		metrics.RecordAIRequest(u.provider.Name(), "error")
		u.log.Errorf("coach completion for user %s: %v", user.ID, err)
		return "", fmt.Errorf("%w: %v", domain.ErrAIService, err)
	}
	metrics.RecordAIRequest(u.provider.Name(), "success")

	answered := u.now()
	conversation := &domain.Conversation{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		SessionID: sessionID,
		Messages: []domain.Message{
			{Role: domain.RoleUser, Content: question, Timestamp: asked.Format(time.RFC3339)},
			{Role: domain.RoleAssistant, Content: answer, Timestamp: answered.Format(time.RFC3339)},
		},
		CreatedAt: answered.Truncate(time.Millisecond),
	}
	if err := u.conversations.Create(ctx, conversation); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIService, err)
	}

	return answer, nil
}

func (u *coachUsecase) ListConversations(ctx context.Context, userID string, limit int) ([]*domain.Conversation, error) {
	if limit <= 0 {
		limit = DefaultConversationLimit
	}
	conversations, err := u.conversations.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if conversations == nil {
		conversations = []*domain.Conversation{}
	}
	return conversations, nil
}
