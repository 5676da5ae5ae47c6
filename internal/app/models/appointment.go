package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment occupies the half-open interval [AppointmentDate, EndTime).
type Appointment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	PatientID        primitive.ObjectID `bson:"patient_id"`
	DoctorID         primitive.ObjectID `bson:"doctor_id"`
	AppointmentDate  time.Time          `bson:"appointment_date"`
	EndTime          time.Time          `bson:"end_time"`
	Duration         int                `bson:"duration"`
	ConsultationType string             `bson:"consultation_type"`
	Status           string             `bson:"status"`
	ConsultationFee  float64            `bson:"consultation_fee"`
	MeetingLink      string             `bson:"meeting_link"`
	Symptoms         string             `bson:"symptoms"`
	PatientNotes     string             `bson:"patient_notes"`
	TimeModel        `bson:",inline"`
}
