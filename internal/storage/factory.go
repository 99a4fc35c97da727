package storage

import (
	"context"
	"fmt"

	authdomain "fitness-backend/internal/auth/domain"
	authrepo "fitness-backend/internal/auth/repository"
	coachdomain "fitness-backend/internal/coach/domain"
	coachrepo "fitness-backend/internal/coach/repository"
	exercisedomain "fitness-backend/internal/exercise/domain"
	exerciserepo "fitness-backend/internal/exercise/repository"
	progressdomain "fitness-backend/internal/progress/domain"
	progressrepo "fitness-backend/internal/progress/repository"
	workoutdomain "fitness-backend/internal/workout/domain"
	workoutrepo "fitness-backend/internal/workout/repository"
	"fitness-backend/pkg/config"
	"fitness-backend/pkg/database"
	"fitness-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Repositories bundles every store-backed repository the service uses
type Repositories struct {
	Users         authrepo.UserRepository
	Sessions      authrepo.SessionRepository
	Exercises     exerciserepo.ExerciseRepository
	Workouts      workoutrepo.WorkoutRepository
	Progress      progressrepo.ProgressRepository
	Conversations coachrepo.ConversationRepository
}

func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:         authrepo.NewMongoUserRepository(db),
		Sessions:      authrepo.NewMongoSessionRepository(db),
		Exercises:     exerciserepo.NewMongoExerciseRepository(db),
		Workouts:      workoutrepo.NewMongoWorkoutRepository(db),
		Progress:      progressrepo.NewMongoProgressRepository(db),
		Conversations: coachrepo.NewMongoConversationRepository(db),
	}
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         authrepo.NewGormUserRepository(db),
		Sessions:      authrepo.NewGormSessionRepository(db),
		Exercises:     exerciserepo.NewGormExerciseRepository(db),
		Workouts:      workoutrepo.NewGormWorkoutRepository(db),
		Progress:      progressrepo.NewGormProgressRepository(db),
		Conversations: coachrepo.NewGormConversationRepository(db),
	}
}

// Migrate creates or updates the relational schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authdomain.User{},
		&authdomain.Session{},
		&exercisedomain.Exercise{},
		&workoutdomain.Workout{},
		&progressdomain.Progress{},
		&coachdomain.Conversation{},
	)
}

// Open connects to the configured backend and returns its repositories
// together with a function releasing the connection.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Repositories, func(context.Context) error, error) {
	switch cfg.StorageBackend {
	case config.StorageMongo:
		client, db, err := database.NewMongoConnection(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		log.Infow("connected to mongo", "database", cfg.DBName)
		return NewMongoRepositories(db), client.Disconnect, nil

	case config.StoragePostgres:
		db, err := database.NewPostgresConnection(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := Migrate(db); err != nil {
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		log.Infow("connected to postgres")
		return NewGormRepositories(db), func(context.Context) error { return sqlDB.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
