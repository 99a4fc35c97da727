package repository

import (
	"context"

	"fitness-backend/internal/coach/domain"
	"fitness-backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoConversationRepository struct {
	coll *mongo.Collection
}

func NewMongoConversationRepository(db *mongo.Database) ConversationRepository {
	return &mongoConversationRepository{coll: db.Collection(database.CollectionConversations)}
}

func (r *mongoConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	_, err := r.coll.InsertOne(ctx, conversation)
	return err
}

func (r *mongoConversationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Conversation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	conversations := []*domain.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}
