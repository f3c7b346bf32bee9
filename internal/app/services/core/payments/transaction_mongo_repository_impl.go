package payments

import (
	"context"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTransactions),
	}
}

func (r *TransactionMongoRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	_, err := r.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return transaction, nil
}

func (r *TransactionMongoRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.Collection.FindOne(ctx, bson.M{"_id": transactionID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (r *TransactionMongoRepository) FindByToken(ctx context.Context, paymentToken string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.Collection.FindOne(ctx, bson.M{"paymentToken": paymentToken}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (r *TransactionMongoRepository) UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	transaction.UpdatedAt = time.Now()
	filter := bson.M{"_id": transaction.ID}
	update := bson.M{"$set": transaction}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return transaction, nil
}
