package doctors

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
	now              func() time.Time
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, request *requests.ListDoctors) (*responses.DoctorList, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, request.Page),
		zap.Int(constvars.LoggingLimitKey, request.Limit),
	)

	err := utils.ValidatePagination(request.Page, request.Limit)
	if err != nil {
		return nil, err
	}

	skip := utils.PaginationSkip(request.Page, request.Limit)
	doctors, err := uc.DoctorRepository.FindDoctors(ctx, request.Filter, skip, int64(request.Limit))
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error calling DoctorRepository.FindDoctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	total, err := uc.DoctorRepository.CountDoctors(ctx, request.Filter)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error calling DoctorRepository.CountDoctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	nextAvailable := utils.FormatISO8601(uc.now())
	for i := range doctors {
		doctors[i].NextAvailable = nextAvailable
	}
	if doctors == nil {
		doctors = []responses.DoctorSummary{}
	}

	uc.Log.Info("doctorUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(doctors)),
		zap.Int(constvars.LoggingTotalKey, total),
	)
	return &responses.DoctorList{
		Doctors:    doctors,
		Pagination: utils.BuildPagination(total, request.Page, request.Limit),
	}, nil
}
