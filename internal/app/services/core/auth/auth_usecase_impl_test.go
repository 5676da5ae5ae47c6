package auth

import (
	"context"
	"errors"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts/mocks"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type authFixture struct {
	users    *mocks.MockUserRepository
	profiles *mocks.MockProfileRepository
	tokens   *mocks.MockTokenManager
	usecase  *authUsecase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    new(mocks.MockUserRepository),
		profiles: new(mocks.MockProfileRepository),
		tokens:   new(mocks.MockTokenManager),
	}
	cfg := &config.InternalConfig{
		Booking: config.Booking{DefaultConsultationFee: constvars.DefaultConsultationFee},
	}
	f.usecase = NewAuthUsecase(f.users, f.profiles, f.tokens, cfg, zap.NewNop()).(*authUsecase)
	return f
}

func doctorRegistration() *requests.RegisterUser {
	return &requests.RegisterUser{
		Email:          "dr.house@example.com",
		Password:       "Doctor123!",
		UserType:       constvars.RoleDoctor,
		FirstName:      "Gregory",
		LastName:       "House",
		MedicalLicense: "MD-0001",
		Specialty:      "Diagnostics",
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID().Hex()

	t.Run("doctor gets default fee and initial rating", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByEmail", ctx, "dr.house@example.com").Return(nil, nil)
		f.users.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == constvars.RoleDoctor && u.IsActive && u.IsVerified &&
				u.PasswordHash != "" && u.PasswordHash != "Doctor123!" &&
				utils.CheckPasswordHash("Doctor123!", u.PasswordHash)
		})).Return(userID, nil)
		f.profiles.On("CreateDoctorProfile", ctx, mock.MatchedBy(func(p *models.DoctorProfile) bool {
			return p.UserID.Hex() == userID &&
				p.ConsultationFee == constvars.DefaultConsultationFee &&
				p.Rating == constvars.InitialDoctorRating &&
				p.Specialty == "Diagnostics"
		})).Return(primitive.NewObjectID().Hex(), nil)

		result, err := f.usecase.Register(ctx, doctorRegistration())

		require.NoError(t, err)
		assert.Equal(t, userID, result.UserID)
		assert.Equal(t, "dr.house@example.com", result.Email)
		assert.Equal(t, constvars.RoleDoctor, result.UserType)
		f.users.AssertExpectations(t)
		f.profiles.AssertExpectations(t)
	})

	t.Run("doctor keeps an explicit fee", func(t *testing.T) {
		f := newAuthFixture()
		fee := 80.0
		request := doctorRegistration()
		request.ConsultationFee = &fee
		f.users.On("FindByEmail", ctx, request.Email).Return(nil, nil)
		f.users.On("CreateUser", ctx, mock.Anything).Return(userID, nil)
		f.profiles.On("CreateDoctorProfile", ctx, mock.MatchedBy(func(p *models.DoctorProfile) bool {
			return p.ConsultationFee == 80.0
		})).Return(primitive.NewObjectID().Hex(), nil)

		_, err := f.usecase.Register(ctx, request)

		require.NoError(t, err)
		f.profiles.AssertExpectations(t)
	})

	t.Run("patient gets a patient profile", func(t *testing.T) {
		f := newAuthFixture()
		request := &requests.RegisterUser{
			Email:       "jane@example.com",
			Password:    "Patient123!",
			UserType:    constvars.RolePatient,
			FirstName:   "Jane",
			LastName:    "Doe",
			DateOfBirth: "1990-04-12",
		}
		f.users.On("FindByEmail", ctx, request.Email).Return(nil, nil)
		f.users.On("CreateUser", ctx, mock.Anything).Return(userID, nil)
		f.profiles.On("CreatePatientProfile", ctx, mock.MatchedBy(func(p *models.PatientProfile) bool {
			return p.UserID.Hex() == userID && p.DateOfBirth == "1990-04-12"
		})).Return(primitive.NewObjectID().Hex(), nil)

		result, err := f.usecase.Register(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, result.UserType)
		f.profiles.AssertNotCalled(t, "CreateDoctorProfile", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByEmail", ctx, "dr.house@example.com").Return(&models.User{Email: "dr.house@example.com"}, nil)

		_, err := f.usecase.Register(ctx, doctorRegistration())

		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		f.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("failed profile insert removes the account", func(t *testing.T) {
		f := newAuthFixture()
		profileErr := exceptions.ErrMongoDBInsertDocument(errors.New("write concern"))
		f.users.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
		f.users.On("CreateUser", ctx, mock.Anything).Return(userID, nil)
		f.profiles.On("CreateDoctorProfile", ctx, mock.Anything).Return("", profileErr)
		f.users.On("DeleteByID", mock.Anything, userID).Return(nil)

		_, err := f.usecase.Register(ctx, doctorRegistration())

		assert.ErrorIs(t, err, profileErr)
		f.users.AssertCalled(t, "DeleteByID", mock.Anything, userID)
	})

	t.Run("account is removed even after the request is cancelled", func(t *testing.T) {
		f := newAuthFixture()
		requestCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		var (
			deleteCalled     bool
			cleanupErr       error
			cleanupHasBudget bool
		)
		f.users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		f.users.On("CreateUser", mock.Anything, mock.Anything).Return(userID, nil)
		f.profiles.On("CreateDoctorProfile", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return("", exceptions.ErrMongoDBInsertDocument(context.Canceled))
		f.users.On("DeleteByID", mock.Anything, userID).
			Run(func(args mock.Arguments) {
				cleanupCtx := args.Get(0).(context.Context)
				deleteCalled = true
				cleanupErr = cleanupCtx.Err()
				_, cleanupHasBudget = cleanupCtx.Deadline()
			}).
			Return(nil)

		_, err := f.usecase.Register(requestCtx, doctorRegistration())

		require.Error(t, err)
		require.True(t, deleteCalled)
		assert.NoError(t, cleanupErr)
		assert.True(t, cleanupHasBudget)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("Patient123!")
	require.NoError(t, err)

	activeUser := func() *models.User {
		return &models.User{
			ID:           primitive.NewObjectID(),
			Email:        "jane@example.com",
			PasswordHash: hash,
			Role:         constvars.RolePatient,
			FirstName:    "Jane",
			LastName:     "Doe",
			IsActive:     true,
		}
	}

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		f := newAuthFixture()
		user := activeUser()
		f.users.On("FindByEmail", ctx, user.Email).Return(user, nil)
		f.users.On("UpdateLastLogin", ctx, user.ID.Hex(), mock.AnythingOfType("time.Time")).Return(nil)
		f.tokens.On("GenerateAccessToken", user.ID.Hex()).Return("signed.jwt.token", time.Hour, nil)

		result, err := f.usecase.Login(ctx, &requests.Login{Email: user.Email, Password: "Patient123!"})

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", result.AccessToken)
		assert.Equal(t, constvars.TokenTypeBearer, result.TokenType)
		assert.Equal(t, 3600, result.ExpiresIn)
		assert.Equal(t, user.ID.Hex(), result.User.ID)
		assert.Equal(t, constvars.RolePatient, result.User.UserType)
		f.users.AssertExpectations(t)
	})

	t.Run("missing password is a bad request", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.usecase.Login(ctx, &requests.Login{Email: "jane@example.com"})

		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		_, err := f.usecase.Login(ctx, &requests.Login{Email: "ghost@example.com", Password: "Patient123!"})

		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newAuthFixture()
		user := activeUser()
		f.users.On("FindByEmail", ctx, user.Email).Return(user, nil)

		_, err := f.usecase.Login(ctx, &requests.Login{Email: user.Email, Password: "Wrong123!"})

		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
		f.tokens.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
	})

	t.Run("deactivated account is forbidden", func(t *testing.T) {
		f := newAuthFixture()
		user := activeUser()
		user.IsActive = false
		f.users.On("FindByEmail", ctx, user.Email).Return(user, nil)

		_, err := f.usecase.Login(ctx, &requests.Login{Email: user.Email, Password: "Patient123!"})

		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		f.users.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})
}
