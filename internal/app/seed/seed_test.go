package seed

import (
	"context"
	"io"
	"mediconnect-service/internal/app/contracts/mocks"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 8, 12, 30, 0, time.UTC)

	users := new(mocks.MockUserRepository)
	profiles := new(mocks.MockProfileRepository)
	appointments := new(mocks.MockAppointmentRepository)

	var created []*models.User
	users.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) { created = append(created, args.Get(1).(*models.User)) }).
		Return(primitive.NewObjectID().Hex(), nil)
	profiles.On("CreateDoctorProfile", ctx, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)
	profiles.On("CreatePatientProfile", ctx, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)

	var booked []*models.Appointment
	appointments.On("CreateAppointment", ctx, mock.AnythingOfType("*models.Appointment")).
		Run(func(args mock.Arguments) { booked = append(booked, args.Get(1).(*models.Appointment)) }).
		Return(primitive.NewObjectID().Hex(), nil)

	log := logrus.New()
	log.SetOutput(io.Discard)
	seeder := NewSeeder(users, profiles, appointments, "https://meet.mediconnect.com", log)
	seeder.now = func() time.Time { return now }

	summary, err := seeder.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, &Summary{Doctors: 3, Patients: 2, Appointments: 2}, summary)
	profiles.AssertNumberOfCalls(t, "CreateDoctorProfile", 3)
	profiles.AssertNumberOfCalls(t, "CreatePatientProfile", 2)

	require.Len(t, created, 5)
	assert.Equal(t, constvars.RoleDoctor, created[0].Role)
	assert.True(t, utils.CheckPasswordHash(DoctorPassword, created[0].PasswordHash))
	assert.Equal(t, constvars.RolePatient, created[4].Role)
	assert.True(t, utils.CheckPasswordHash(PatientPassword, created[4].PasswordHash))

	require.Len(t, booked, 2)
	first := booked[0]
	assert.Equal(t, time.Date(2026, 10, 22, 17, 12, 0, 0, time.UTC), first.AppointmentDate)
	assert.Equal(t, 30*time.Minute, first.EndTime.Sub(first.AppointmentDate))
	assert.Equal(t, constvars.AppointmentStatusConfirmed, first.Status)
}
