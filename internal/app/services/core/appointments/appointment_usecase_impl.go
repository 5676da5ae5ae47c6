package appointments

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
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	ProfileRepository     contracts.ProfileRepository
	RoleGate              contracts.RoleGate
	LockService           contracts.LockerService
	EventPublisher        contracts.AppointmentEventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	profileRepository contracts.ProfileRepository,
	roleGate contracts.RoleGate,
	lockService contracts.LockerService,
	eventPublisher contracts.AppointmentEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		ProfileRepository:     profileRepository,
		RoleGate:              roleGate,
		LockService:           lockService,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   func() time.Time { return time.Now().UTC() },
	}
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, patientID string, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	patient, err := uc.RoleGate.Authorize(ctx, patientID, constvars.RolePatient)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctorObjectID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrInvalidDoctorID(err)
	}

	// Hex spellings differ in case; everything below keys on the normalized form.
	doctorID := doctorObjectID.Hex()

	doctor, err := uc.findActiveDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	start, err := utils.ParseAppointmentDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrInvalidAppointmentDate(err)
	}
	if !start.After(uc.now()) {
		return nil, exceptions.ErrAppointmentNotInFuture(nil)
	}

	requestedDuration := *request.Duration
	duration := int(requestedDuration)
	if float64(duration) != requestedDuration || !slices.Contains(constvars.AllowedAppointmentDurations, duration) {
		return nil, exceptions.ErrInvalidDuration(nil)
	}
	if !slices.Contains(constvars.AllowedConsultationTypes, request.ConsultationType) {
		return nil, exceptions.ErrInvalidConsultationType(nil)
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	lockKey := utils.BuildDoctorLockKey(doctorID)
	lockValue, err := uc.acquireDoctorLock(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer uc.releaseDoctorLock(ctx, lockKey, lockValue)

	conflict, err := uc.AppointmentRepository.HasConflict(ctx, doctorID, start, end)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error calling AppointmentRepository.HasConflict",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if conflict {
		uc.Log.Info("appointmentUsecase.BookAppointment time slot taken",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return nil, exceptions.ErrTimeSlotUnavailable(nil)
	}

	fee, err := uc.consultationFee(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:        patient.ID,
		DoctorID:         doctorObjectID,
		AppointmentDate:  start,
		EndTime:          end,
		Duration:         duration,
		ConsultationType: request.ConsultationType,
		Status:           constvars.AppointmentStatusConfirmed,
		ConsultationFee:  fee,
		MeetingLink:      utils.GenerateMeetingLink(uc.InternalConfig.Booking.MeetingBaseUrl),
		Symptoms:         request.Symptoms,
		PatientNotes:     request.Notes,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error calling AppointmentRepository.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID, _ = primitive.ObjectIDFromHex(appointmentID)

	err = uc.EventPublisher.PublishAppointmentBooked(ctx, appointment)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.BookAppointment error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentKey, appointmentID),
			zap.Error(err),
		)
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)
	return buildAppointmentResponse(appointment, doctor), nil
}

func (uc *appointmentUsecase) findActiveDoctor(ctx context.Context, doctorID string) (*models.User, error) {
	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.findActiveDoctor error calling UserRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil || !doctor.HasRole(constvars.RoleDoctor) || !doctor.IsActive {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

func (uc *appointmentUsecase) consultationFee(ctx context.Context, doctorID string) (float64, error) {
	profile, err := uc.ProfileRepository.FindDoctorProfileByUserID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.consultationFee error calling ProfileRepository.FindDoctorProfileByUserID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return 0, err
	}
	if profile == nil {
		return uc.InternalConfig.Booking.DefaultConsultationFee, nil
	}
	return profile.ConsultationFee, nil
}

// acquireDoctorLock polls for the per-doctor booking lock a bounded number of times.
func (uc *appointmentUsecase) acquireDoctorLock(ctx context.Context, lockKey string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	bookingConfig := uc.InternalConfig.Booking
	ttl := time.Duration(bookingConfig.LockTTLInSeconds) * time.Second
	interval := time.Duration(bookingConfig.LockRetryIntervalInMilliseconds) * time.Millisecond

	for attempt := 0; attempt <= bookingConfig.LockRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", exceptions.ErrServerDeadlineExceeded(ctx.Err())
			case <-time.After(interval):
			}
		}

		acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, ttl)
		if err != nil {
			uc.Log.Error("appointmentUsecase.acquireDoctorLock error calling LockService.TryLock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
			return "", err
		}
		if acquired {
			return lockValue, nil
		}

		uc.Log.Debug("appointmentUsecase.acquireDoctorLock lock busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Int(constvars.LoggingAttemptKey, attempt+1),
		)
	}

	return "", exceptions.ErrBookingInProgress(nil)
}

func (uc *appointmentUsecase) releaseDoctorLock(ctx context.Context, lockKey, lockValue string) {
	// The request context may already be done; the lock still has to go.
	err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.releaseDoctorLock error calling LockService.Unlock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment, doctor *models.User) *responses.Appointment {
	return &responses.Appointment{
		ID:               appointment.ID.Hex(),
		DoctorID:         appointment.DoctorID.Hex(),
		PatientID:        appointment.PatientID.Hex(),
		DoctorName:       utils.BuildDoctorName(doctor.FirstName, doctor.LastName),
		AppointmentDate:  utils.FormatISO8601(appointment.AppointmentDate),
		EndTime:          utils.FormatISO8601(appointment.EndTime),
		Duration:         appointment.Duration,
		ConsultationType: appointment.ConsultationType,
		Status:           appointment.Status,
		ConsultationFee:  appointment.ConsultationFee,
		MeetingLink:      appointment.MeetingLink,
		Symptoms:         appointment.Symptoms,
		Notes:            appointment.PatientNotes,
		CreatedAt:        utils.FormatISO8601(appointment.CreatedAt),
	}
}
