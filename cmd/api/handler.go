package api

import (
	"net/http"
	"time"

	authUsecase "fitness-backend/internal/auth/usecase"
	coachUsecase "fitness-backend/internal/coach/usecase"
	dashboardUsecase "fitness-backend/internal/dashboard/usecase"
	exerciseUsecase "fitness-backend/internal/exercise/usecase"
	profileUsecase "fitness-backend/internal/profile/usecase"
	progressUsecase "fitness-backend/internal/progress/usecase"
	"fitness-backend/internal/storage"
	workoutUsecase "fitness-backend/internal/workout/usecase"
	"fitness-backend/pkg/ai"
	"fitness-backend/pkg/config"
	"fitness-backend/pkg/events"
	"fitness-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Usecases groups the business logic served over HTTP
type Usecases struct {
	Auth      authUsecase.AuthUsecase
	Exercises exerciseUsecase.ExerciseUsecase
	Workouts  workoutUsecase.WorkoutUsecase
	Progress  progressUsecase.ProgressUsecase
	Profile   profileUsecase.ProfileUsecase
	Dashboard dashboardUsecase.DashboardUsecase
	Coach     coachUsecase.CoachUsecase
}

// Gateways are the external services the usecases call
type Gateways struct {
	Sessions  authUsecase.OAuthSessionResolver
	Chat      ai.ChatCompletionProvider
	Publisher events.Publisher
}

// NewUsecases wires every usecase onto the given repositories and gateways
func NewUsecases(cfg *config.Config, log logger.Logger, repos *storage.Repositories, gw Gateways) Usecases {
	topics := events.NewTopics(cfg.KafkaTopicPrefix)
	publisher := gw.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return Usecases{
		Auth:      authUsecase.NewAuthUsecase(repos.Users, repos.Sessions, gw.Sessions, cfg.SessionTTL, log),
		Exercises: exerciseUsecase.NewExerciseUsecase(repos.Exercises),
		Workouts:  workoutUsecase.NewWorkoutUsecase(repos.Workouts, publisher, topics.Workouts, log),
		Progress:  progressUsecase.NewProgressUsecase(repos.Progress, publisher, topics.Progress, log),
		Profile:   profileUsecase.NewProfileUsecase(repos.Users),
		Dashboard: dashboardUsecase.NewDashboardUsecase(repos.Workouts, repos.Progress),
		Coach:     coachUsecase.NewCoachUsecase(gw.Chat, repos.Workouts, repos.Progress, repos.Conversations, log),
	}
}

type Handler struct {
	usecases Usecases
	config   *config.Config
	log      logger.Logger
}

func NewHandler(usecases Usecases, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		usecases: usecases,
		config:   cfg,
		log:      log,
	}
}

// Router builds the gin engine with middleware and routes
func (h *Handler) Router() *gin.Engine {
	if h.config.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(AccessLogMiddleware(h.log))
	r.Use(CORSMiddleware(h.config.CORSOrigins))

	SetupRoutes(r, h.usecases)
	return r
}

// Server returns an http.Server for the router. Shutdown is left to the caller.
func (h *Handler) Server(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
