package repository

import (
	"context"
	"errors"
	"time"

	"fitness-backend/internal/workout/domain"
	"fitness-backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoWorkoutRepository struct {
	coll *mongo.Collection
}

func NewMongoWorkoutRepository(db *mongo.Database) WorkoutRepository {
	return &mongoWorkoutRepository{coll: db.Collection(database.CollectionWorkouts)}
}

func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	_, err := r.coll.InsertOne(ctx, workout)
	return err
}

func (r *mongoWorkoutRepository) FindByIDForUser(ctx context.Context, id, userID string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *mongoWorkoutRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []*domain.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *mongoWorkoutRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *mongoWorkoutRepository) CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	})
}
