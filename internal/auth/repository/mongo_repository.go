package repository

import (
	"context"
	"errors"
	"time"

	"fitness-backend/internal/auth/domain"
	"fitness-backend/pkg/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a UserRepository backed by the users collection
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(database.CollectionUsers)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.FitnessGoals == nil {
		user.FitnessGoals = []string{}
	}
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error {
	set := bson.M{}
	if update.FitnessGoals != nil {
		set["fitness_goals"] = *update.FitnessGoals
	}
	if update.ExperienceLevel != nil {
		set["experience_level"] = *update.ExperienceLevel
	}
	if len(set) == 0 {
		return nil
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

type mongoSessionRepository struct {
	coll *mongo.Collection
}

// NewMongoSessionRepository creates a SessionRepository backed by the user_sessions collection
func NewMongoSessionRepository(db *mongo.Database) SessionRepository {
	return &mongoSessionRepository{coll: db.Collection(database.CollectionSessions)}
}

func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, session)
	return err
}

func (r *mongoSessionRepository) FindActiveByToken(ctx context.Context, token string, now time.Time) (*domain.Session, error) {
	var session domain.Session
	filter := bson.M{
		"session_token": token,
		"expires_at":    bson.M{"$gt": now},
	}
	err := r.coll.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *mongoSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"session_token": token})
	return err
}
