package repository

import (
	"context"
	"time"

	"fitness-backend/internal/progress/domain"
	"fitness-backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoProgressRepository struct {
	coll *mongo.Collection
}

func NewMongoProgressRepository(db *mongo.Database) ProgressRepository {
	return &mongoProgressRepository{coll: db.Collection(database.CollectionProgress)}
}

func (r *mongoProgressRepository) Create(ctx context.Context, progress *domain.Progress) error {
	_, err := r.coll.InsertOne(ctx, progress)
	return err
}

func (r *mongoProgressRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.Progress, error) {
	filter := bson.M{"user_id": userID, "date": bson.M{"$gte": since}}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (r *mongoProgressRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Progress, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.M{"user_id": userID}, opts)
}

func (r *mongoProgressRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Progress, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*domain.Progress{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
