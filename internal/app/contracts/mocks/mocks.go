// Package mocks holds testify mocks for the contracts interfaces.
package mocks

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error {
	args := m.Called(ctx, userID, loginAt)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateDoctorProfile(ctx context.Context, profile *models.DoctorProfile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *MockProfileRepository) CreatePatientProfile(ctx context.Context, profile *models.PatientProfile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *MockProfileRepository) FindDoctorProfileByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*models.DoctorProfile)
	return profile, args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindDoctors(ctx context.Context, filter requests.DoctorListFilter, skip, limit int64) ([]responses.DoctorSummary, error) {
	args := m.Called(ctx, filter, skip, limit)
	doctors, _ := args.Get(0).([]responses.DoctorSummary)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) CountDoctors(ctx context.Context, filter requests.DoctorListFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) HasConflict(ctx context.Context, doctorID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, doctorID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) MarkCompletedEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoleGate struct {
	mock.Mock
}

func (m *MockRoleGate) Authorize(ctx context.Context, callerID, requiredRole string) (*models.User, error) {
	args := m.Called(ctx, callerID, requiredRole)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockAppointmentEventPublisher struct {
	mock.Mock
}

func (m *MockAppointmentEventPublisher) PublishAppointmentBooked(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(subject string) (string, time.Duration, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockTokenManager) ParseAccessToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.RegisterUser)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) ListDoctors(ctx context.Context, request *requests.ListDoctors) (*responses.DoctorList, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.DoctorList)
	return response, args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) BookAppointment(ctx context.Context, patientID string, request *requests.BookAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, patientID, request)
	response, _ := args.Get(0).(*responses.Appointment)
	return response, args.Error(1)
}
