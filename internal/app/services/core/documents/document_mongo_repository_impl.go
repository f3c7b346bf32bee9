package documents

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

type DocumentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDocumentMongoRepository(db *mongo.Client, dbName string) contracts.DocumentRepository {
	return &DocumentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDocuments),
	}
}

func (r *DocumentMongoRepository) CreateDocument(ctx context.Context, document *models.Document) (*models.Document, error) {
	if document.ID == "" {
		document.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, document)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return document, nil
}

func (r *DocumentMongoRepository) FindByID(ctx context.Context, documentID string) (*models.Document, error) {
	var document models.Document
	err := r.Collection.FindOne(ctx, bson.M{"_id": documentID}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &document, nil
}

func (r *DocumentMongoRepository) FindAllByOwnerID(ctx context.Context, ownerID string) ([]models.Document, error) {
	findOptions := options.Find().SetSort(bson.M{"uploadedAt": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var documents []models.Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return documents, nil
}
