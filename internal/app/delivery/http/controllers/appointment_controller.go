package controllers

import (
	"context"
	"errors"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	DoctorUsecase      contracts.DoctorUsecase
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(
	logger *zap.Logger,
	doctorUsecase contracts.DoctorUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
	internalConfig *config.InternalConfig,
) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		DoctorUsecase:      doctorUsecase,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, limit, err := utils.ParsePaginationParams(query.Get("page"), query.Get("limit"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListDoctors{
		Filter: requests.DoctorListFilter{
			Specialty: query.Get("specialty"),
			Location:  query.Get("location"),
			Date:      query.Get("date"),
		},
		Page:  page,
		Limit: limit,
	}
	utils.SanitizeDoctorListFilter(&request.Filter)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.DoctorUsecase.ListDoctors(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, response)
}

// BookAppointment leaves field validation to the use case so the role check
// comes first.
func (ctrl *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeBookAppointmentRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.BookAppointment(ctx, utils.GetUserID(r.Context()), request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccessMessage, responses.BookAppointment{
		Appointment: *appointment,
	})
}
