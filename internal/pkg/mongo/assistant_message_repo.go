package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssistantMessageRepo interface {
	SaveMessage(ctx context.Context, msg *AssistantMessage) error
	GetHistory(ctx context.Context, convID string, userID uint64, limit int) ([]*AssistantMessage, error)
}

type assistantMessageRepoImpl struct {
	col *mongo.Collection
}

func NewAssistantMessageRepo(db *mongo.Database) AssistantMessageRepo {
	return &assistantMessageRepoImpl{
		col: db.Collection("assistant_messages"),
	}
}

func (s *assistantMessageRepoImpl) SaveMessage(ctx context.Context, msg *AssistantMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if msg.ID == "" {
		msg.ID = primitive.NewObjectID().Hex()
	}
	_, err := s.col.InsertOne(ctx, msg)
	return err
}

// GetHistory returns the latest messages of a conversation in
// chronological order. The userID filter keeps conversations private.
func (s *assistantMessageRepoImpl) GetHistory(ctx context.Context, convID string, userID uint64, limit int) ([]*AssistantMessage, error) {
	if limit <= 0 {
		limit = 20
	}

	filter := bson.M{"conversation_id": convID, "user_id": userID}

	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	messages := make([]*AssistantMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	// Reverse into oldest-first order for the prompt.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
