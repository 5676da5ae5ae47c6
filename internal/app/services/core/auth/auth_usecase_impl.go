package auth

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Bounds the account cleanup after a failed profile insert.
const compensationTimeout = 5 * time.Second

type authUsecase struct {
	UserRepository    contracts.UserRepository
	ProfileRepository contracts.ProfileRepository
	TokenManager      contracts.TokenManager
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	profileRepository contracts.ProfileRepository,
	tokenManager contracts.TokenManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		ProfileRepository: profileRepository,
		TokenManager:      tokenManager,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("authUsecase.Register email already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return nil, exceptions.ErrEmailAlreadyRegistered(nil)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Register error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		Role:         request.UserType,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Phone:        request.Phone,
		IsVerified:   true,
		IsActive:     true,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.createProfile(ctx, userID, request)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating profile, removing account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		// The request context may be what failed the insert.
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
		defer cancel()
		if deleteErr := uc.UserRepository.DeleteByID(cleanupCtx, userID); deleteErr != nil {
			uc.Log.Error("authUsecase.Register error calling UserRepository.DeleteByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.RegisterUser{
		UserID:   userID,
		Email:    user.Email,
		UserType: user.Role,
	}, nil
}

func (uc *authUsecase) createProfile(ctx context.Context, userID string, request *requests.RegisterUser) error {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	if request.UserType == constvars.RoleDoctor {
		fee := uc.InternalConfig.Booking.DefaultConsultationFee
		if request.ConsultationFee != nil {
			fee = *request.ConsultationFee
		}
		profile := &models.DoctorProfile{
			UserID:          userObjectID,
			MedicalLicense:  request.MedicalLicense,
			Specialty:       request.Specialty,
			ConsultationFee: fee,
			Rating:          constvars.InitialDoctorRating,
			YearsExperience: request.YearsExperience,
			Bio:             request.Bio,
		}
		profile.SetCreatedAtUpdatedAt()
		_, err = uc.ProfileRepository.CreateDoctorProfile(ctx, profile)
		return err
	}

	profile := &models.PatientProfile{
		UserID:         userObjectID,
		DateOfBirth:    request.DateOfBirth,
		MedicalHistory: request.MedicalHistory,
	}
	profile.SetCreatedAtUpdatedAt()
	_, err = uc.ProfileRepository.CreatePatientProfile(ctx, profile)
	return err
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if request.Email == "" || request.Password == "" {
		return nil, exceptions.ErrEmailPasswordRequired(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Unknown email and wrong password answer the same way.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		uc.Log.Info("authUsecase.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !user.IsActive {
		uc.Log.Info("authUsecase.Login account deactivated",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
		)
		return nil, exceptions.ErrAccountDeactivated(nil)
	}

	userID := user.ID.Hex()
	err = uc.UserRepository.UpdateLastLogin(ctx, userID, uc.now())
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling UserRepository.UpdateLastLogin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}

	accessToken, ttl, err := uc.TokenManager.GenerateAccessToken(userID)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Login{
		AccessToken: accessToken,
		TokenType:   constvars.TokenTypeBearer,
		ExpiresIn:   int(ttl.Seconds()),
		User: responses.LoginUser{
			ID:        userID,
			Email:     user.Email,
			UserType:  user.Role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}
