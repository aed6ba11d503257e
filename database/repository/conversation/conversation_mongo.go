package conversationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medigo/database"
	"medigo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConversationRepository defines persistence for conversation state.
type ConversationRepository interface {
	Get(conversationID string) (*models.Conversation, error)
	Save(conv *models.Conversation) error
	Deactivate(conversationID string) error
	ActiveCount() (int64, error)
	TotalMessages() (int64, error)
	CleanupExpired(now time.Time) (int64, error)
}

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	convColl *mongo.Collection
}

// NewMongoConversationRepo constructs a new instance of MongoConversationRepo.
func NewMongoConversationRepo() ConversationRepository {
	db := database.MongoClient.Database("medigo")
	return &MongoConversationRepo{
		convColl: db.Collection("conversations"),
	}
}

// Get retrieves a conversation by its ID. A missing conversation is not an
// error; it returns (nil, nil).
func (repo *MongoConversationRepo) Get(conversationID string) (*models.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var conv models.Conversation
	filter := bson.M{"conversationId": conversationID}
	if err := repo.convColl.FindOne(ctx, filter).Decode(&conv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching conversation %s: %w", conversationID, err)
	}
	return &conv, nil
}

// Save upserts the full conversation document.
func (repo *MongoConversationRepo) Save(conv *models.Conversation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conv.UpdatedAt = time.Now()
	filter := bson.M{"conversationId": conv.ConversationID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.convColl.ReplaceOne(ctx, filter, conv, opts); err != nil {
		return fmt.Errorf("error saving conversation %s: %w", conv.ConversationID, err)
	}
	return nil
}

// Deactivate marks a conversation cancelled and inactive.
func (repo *MongoConversationRepo) Deactivate(conversationID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"conversationId": conversationID}
	update := bson.M{"$set": bson.M{
		"isActive":  false,
		"status":    models.ConversationStatusCancelled,
		"updatedAt": time.Now(),
	}}
	res, err := repo.convColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error deactivating conversation %s: %w", conversationID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ActiveCount returns the number of active conversations.
func (repo *MongoConversationRepo) ActiveCount() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.convColl.CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return 0, fmt.Errorf("error counting active conversations: %w", err)
	}
	return count, nil
}

// TotalMessages sums the message counts across all conversations.
func (repo *MongoConversationRepo) TotalMessages() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{"count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$messages", bson.A{}}}}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$count"}}}},
	}
	cursor, err := repo.convColl.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating message counts: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("error decoding message count: %w", err)
		}
	}
	return result.Total, nil
}

// CleanupExpired deactivates conversations whose TTL has lapsed and returns
// how many were swept.
func (repo *MongoConversationRepo) CleanupExpired(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"isActive":  true,
		"expiresAt": bson.M{"$lt": now},
	}
	update := bson.M{"$set": bson.M{
		"isActive":  false,
		"status":    models.ConversationStatusCancelled,
		"updatedAt": now,
	}}
	res, err := repo.convColl.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error cleaning up expired conversations: %w", err)
	}
	return res.ModifiedCount, nil
}
