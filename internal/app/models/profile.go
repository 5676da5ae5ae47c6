package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type DoctorProfile struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	MedicalLicense  string             `bson:"medical_license"`
	Specialty       string             `bson:"specialty"`
	ConsultationFee float64            `bson:"consultation_fee"`
	Rating          float64            `bson:"rating"`
	YearsExperience int                `bson:"years_experience"`
	Bio             string             `bson:"bio,omitempty"`
	TimeModel       `bson:",inline"`
}

type PatientProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"user_id"`
	DateOfBirth    string             `bson:"date_of_birth,omitempty"`
	MedicalHistory string             `bson:"medical_history"`
	TimeModel      `bson:",inline"`
}
