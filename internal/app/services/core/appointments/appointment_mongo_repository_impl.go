package appointments

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// buildConflictFilter matches blocking appointments whose interval overlaps [start, end).
func buildConflictFilter(doctorID primitive.ObjectID, start, end time.Time) bson.M {
	return bson.M{
		"doctor_id":        doctorID,
		"status":           bson.M{"$nin": constvars.NonBlockingAppointmentStatuses},
		"appointment_date": bson.M{"$lt": end},
		"end_time":         bson.M{"$gt": start},
	}
}

func (repo *AppointmentMongoRepository) HasConflict(ctx context.Context, doctorID string, start, end time.Time) (bool, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	err = repo.Collection.FindOne(ctx, buildConflictFilter(doctorObjectID, start, end)).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return true, nil
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrTimeSlotTakenByIndex(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// MarkCompletedEndedBefore moves confirmed appointments that ended before
// cutoff to completed and returns how many changed.
func (repo *AppointmentMongoRepository) MarkCompletedEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"status":   constvars.AppointmentStatusConfirmed,
		"end_time": bson.M{"$lt": cutoff},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     constvars.AppointmentStatusCompleted,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}
