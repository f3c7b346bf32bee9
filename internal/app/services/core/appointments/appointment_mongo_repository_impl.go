package appointments

import (
	"context"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if appointment.ID == "" {
		appointment.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Appointment, error) {
	filter := bson.M{}
	if queryParams.PatientID != "" {
		filter["patientId"] = queryParams.PatientID
	}
	if queryParams.DoctorID != "" {
		filter["doctorId"] = queryParams.DoctorID
	}
	if queryParams.Status != "" {
		filter["status"] = queryParams.Status
	}

	findOptions := options.Find().SetSort(bson.M{"start": 1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.UpdatedAt = time.Now()
	filter := bson.M{"_id": appointment.ID}
	update := bson.M{"$set": appointment}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return appointment, nil
}

// CountOverlapping counts non-cancelled appointments for a doctor whose slot
// intersects [start, end).
func (r *AppointmentMongoRepository) CountOverlapping(ctx context.Context, doctorID string, start, end time.Time) (int64, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"status":   bson.M{"$ne": models.AppointmentCancelled},
		"start":    bson.M{"$gte": start, "$lt": end},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
