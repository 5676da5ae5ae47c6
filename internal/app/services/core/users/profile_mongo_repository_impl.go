package users

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileMongoRepository struct {
	DoctorCollection  *mongo.Collection
	PatientCollection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	database := db.Database(dbName)
	return &ProfileMongoRepository{
		DoctorCollection:  database.Collection(constvars.MongoCollectionDoctorProfiles),
		PatientCollection: database.Collection(constvars.MongoCollectionPatientProfiles),
	}
}

func (repo *ProfileMongoRepository) CreateDoctorProfile(ctx context.Context, profile *models.DoctorProfile) (string, error) {
	result, err := repo.DoctorCollection.InsertOne(ctx, profile)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ProfileMongoRepository) CreatePatientProfile(ctx context.Context, profile *models.PatientProfile) (string, error) {
	result, err := repo.PatientCollection.InsertOne(ctx, profile)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ProfileMongoRepository) FindDoctorProfileByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var profile models.DoctorProfile
	err = repo.DoctorCollection.FindOne(ctx, bson.M{"user_id": objectID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}
