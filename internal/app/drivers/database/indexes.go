package database

import (
	"context"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexDefinitions() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: constvars.MongoCollectionUsers,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetName("uniq_email").SetUnique(true),
				},
				{
					Keys:    bson.D{{Key: "role", Value: 1}, {Key: "is_active", Value: 1}},
					Options: options.Index().SetName("role_active"),
				},
			},
		},
		{
			collection: constvars.MongoCollectionDoctorProfiles,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetName("uniq_user_id").SetUnique(true),
				},
			},
		},
		{
			collection: constvars.MongoCollectionPatientProfiles,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetName("uniq_user_id").SetUnique(true),
				},
			},
		},
		{
			collection: constvars.MongoCollectionAppointments,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "doctor_id", Value: 1}, {Key: "appointment_date", Value: 1}, {Key: "end_time", Value: 1}},
					Options: options.Index().SetName("doctor_interval"),
				},
				{
					// Last line of defence against two confirmed bookings starting at the same instant.
					Keys:    bson.D{{Key: "doctor_id", Value: 1}, {Key: "appointment_date", Value: 1}},
					Options: options.Index().
						SetName("uniq_confirmed_doctor_appointment_date").
						SetUnique(true).
						SetPartialFilterExpression(bson.M{"status": constvars.AppointmentStatusConfirmed}),
				},
				{
					Keys:    bson.D{{Key: "status", Value: 1}, {Key: "end_time", Value: 1}},
					Options: options.Index().SetName("status_end_time"),
				},
				{
					Keys:    bson.D{{Key: "patient_id", Value: 1}, {Key: "appointment_date", Value: -1}},
					Options: options.Index().SetName("patient_appointment_date"),
				},
			},
		},
	}
}

// EnsureIndexes creates every index the service relies on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, definition := range indexDefinitions() {
		_, err := db.Collection(definition.collection).Indexes().CreateMany(ctx, definition.models)
		if err != nil {
			return exceptions.ErrMongoDBCreateIndexes(err)
		}
	}
	return nil
}
