// Package seed loads demo accounts, profiles and appointments for local
// development.
package seed

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DoctorPassword  = "Doctor123!"
	PatientPassword = "Patient123!"
)

type doctorSeed struct {
	user    models.User
	profile models.DoctorProfile
}

type patientSeed struct {
	user    models.User
	profile models.PatientProfile
}

type appointmentSeed struct {
	patient     int
	doctor      int
	startsIn    time.Duration
	fee         float64
	symptoms    string
	notes       string
	consultType string
}

var doctorSeeds = []doctorSeed{
	{
		user: models.User{Email: "dr.johnson@mediconnect.com", FirstName: "Sarah", LastName: "Johnson", Phone: "+1-416-555-0124"},
		profile: models.DoctorProfile{
			MedicalLicense: "MD123456789", Specialty: "Cardiology", ConsultationFee: 150, Rating: 4.8, YearsExperience: 12,
			Bio: "Experienced cardiologist specializing in preventive heart care.",
		},
	},
	{
		user: models.User{Email: "dr.smith@mediconnect.com", FirstName: "Michael", LastName: "Smith", Phone: "+1-416-555-0125"},
		profile: models.DoctorProfile{
			MedicalLicense: "MD987654321", Specialty: "Dermatology", ConsultationFee: 120, Rating: 4.9, YearsExperience: 8,
			Bio: "Board-certified dermatologist with expertise in skin disorders.",
		},
	},
	{
		user: models.User{Email: "dr.patel@mediconnect.com", FirstName: "Priya", LastName: "Patel", Phone: "+1-416-555-0126"},
		profile: models.DoctorProfile{
			MedicalLicense: "MD456789123", Specialty: "Family Medicine", ConsultationFee: 100, Rating: 4.7, YearsExperience: 15,
			Bio: "Family medicine physician providing comprehensive primary care.",
		},
	},
}

var patientSeeds = []patientSeed{
	{
		user:    models.User{Email: "john.smith@email.com", FirstName: "John", LastName: "Smith", Phone: "+1-416-555-0123"},
		profile: models.PatientProfile{DateOfBirth: "1978-05-15", MedicalHistory: "Hypertension, Type 2 Diabetes"},
	},
	{
		user:    models.User{Email: "jane.doe@email.com", FirstName: "Jane", LastName: "Doe", Phone: "+1-416-555-0127"},
		profile: models.PatientProfile{DateOfBirth: "1985-09-22", MedicalHistory: "No significant medical history"},
	},
}

var appointmentSeeds = []appointmentSeed{
	{
		patient: 0, doctor: 0, startsIn: 7*24*time.Hour + 9*time.Hour, fee: 150,
		consultType: constvars.ConsultationTypeVideo,
		symptoms:    "Chest pain and irregular heartbeat",
		notes:       "First consultation for this issue",
	},
	{
		patient: 1, doctor: 1, startsIn: 5*24*time.Hour + 14*time.Hour, fee: 120,
		consultType: constvars.ConsultationTypeVideo,
		symptoms:    "Skin rash on arms",
		notes:       "Rash appeared 3 days ago",
	},
}

type Summary struct {
	Doctors      int
	Patients     int
	Appointments int
}

type Seeder struct {
	Users          contracts.UserRepository
	Profiles       contracts.ProfileRepository
	Appointments   contracts.AppointmentRepository
	MeetingBaseUrl string
	Log            *logrus.Logger
	now            func() time.Time
}

func NewSeeder(
	userRepository contracts.UserRepository,
	profileRepository contracts.ProfileRepository,
	appointmentRepository contracts.AppointmentRepository,
	meetingBaseUrl string,
	logger *logrus.Logger,
) *Seeder {
	return &Seeder{
		Users:          userRepository,
		Profiles:       profileRepository,
		Appointments:   appointmentRepository,
		MeetingBaseUrl: meetingBaseUrl,
		Log:            logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	summary := new(Summary)

	doctorHash, err := utils.HashPassword(DoctorPassword)
	if err != nil {
		return nil, err
	}
	patientHash, err := utils.HashPassword(PatientPassword)
	if err != nil {
		return nil, err
	}

	doctorIDs := make([]primitive.ObjectID, 0, len(doctorSeeds))
	for _, seed := range doctorSeeds {
		user := seed.user
		userID, err := s.createUser(ctx, &user, constvars.RoleDoctor, doctorHash)
		if err != nil {
			return nil, err
		}

		profile := seed.profile
		profile.UserID = userID
		profile.SetCreatedAtUpdatedAt()
		if _, err := s.Profiles.CreateDoctorProfile(ctx, &profile); err != nil {
			return nil, err
		}

		doctorIDs = append(doctorIDs, userID)
		summary.Doctors++
		s.Log.WithFields(logrus.Fields{
			constvars.LoggingEmailKey: user.Email,
			"specialty":               profile.Specialty,
		}).Info("Created doctor")
	}

	patientIDs := make([]primitive.ObjectID, 0, len(patientSeeds))
	for _, seed := range patientSeeds {
		user := seed.user
		userID, err := s.createUser(ctx, &user, constvars.RolePatient, patientHash)
		if err != nil {
			return nil, err
		}

		profile := seed.profile
		profile.UserID = userID
		profile.SetCreatedAtUpdatedAt()
		if _, err := s.Profiles.CreatePatientProfile(ctx, &profile); err != nil {
			return nil, err
		}

		patientIDs = append(patientIDs, userID)
		summary.Patients++
		s.Log.WithField(constvars.LoggingEmailKey, user.Email).Info("Created patient")
	}

	now := s.now().Truncate(time.Minute)
	for _, seed := range appointmentSeeds {
		start := now.Add(seed.startsIn)
		appointment := &models.Appointment{
			PatientID:        patientIDs[seed.patient],
			DoctorID:         doctorIDs[seed.doctor],
			AppointmentDate:  start,
			EndTime:          start.Add(30 * time.Minute),
			Duration:         30,
			ConsultationType: seed.consultType,
			Status:           constvars.AppointmentStatusConfirmed,
			ConsultationFee:  seed.fee,
			MeetingLink:      utils.GenerateMeetingLink(s.MeetingBaseUrl),
			Symptoms:         seed.symptoms,
			PatientNotes:     seed.notes,
		}
		appointment.SetCreatedAtUpdatedAt()

		appointmentID, err := s.Appointments.CreateAppointment(ctx, appointment)
		if err != nil {
			return nil, err
		}
		summary.Appointments++
		s.Log.WithField(constvars.LoggingAppointmentKey, appointmentID).Info("Created appointment")
	}

	return summary, nil
}

func (s *Seeder) createUser(ctx context.Context, user *models.User, role, passwordHash string) (primitive.ObjectID, error) {
	user.Role = role
	user.PasswordHash = passwordHash
	user.IsVerified = true
	user.IsActive = true
	user.SetCreatedAtUpdatedAt()

	userID, err := s.Users.CreateUser(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(userID)
}
