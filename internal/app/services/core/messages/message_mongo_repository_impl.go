package messages

import (
	"context"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) contracts.MessageRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessages),
	}
}

func (r *MessageMongoRepository) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	if message.ID == "" {
		message.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return message, nil
}

func (r *MessageMongoRepository) FindConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"senderId": userID, "recipientId": otherUserID},
			{"senderId": otherUserID, "recipientId": userID},
		},
	}
	findOptions := options.Find().SetSort(bson.M{"sentAt": 1})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	err = cursor.All(ctx, &messages)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func (r *MessageMongoRepository) MarkConversationRead(ctx context.Context, recipientID, senderID string) error {
	filter := bson.M{
		"recipientId": recipientID,
		"senderId":    senderID,
		"read":        false,
	}
	update := bson.M{"$set": bson.M{"read": true}}

	_, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
