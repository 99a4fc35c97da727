package repository

import (
	"context"

	"fitness-backend/internal/exercise/domain"
	"fitness-backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoExerciseRepository struct {
	coll *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) ExerciseRepository {
	return &mongoExerciseRepository{coll: db.Collection(database.CollectionExercises)}
}

func (r *mongoExerciseRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Exercise, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []*domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *mongoExerciseRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoExerciseRepository) InsertMany(ctx context.Context, exercises []*domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	docs := make([]interface{}, len(exercises))
	for i, e := range exercises {
		docs[i] = e
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}
