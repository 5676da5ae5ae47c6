package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentRepository interface {
	// HasConflict reports whether [start, end) overlaps a blocking appointment of the doctor.
	HasConflict(ctx context.Context, doctorID string, start, end time.Time) (bool, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	MarkCompletedEndedBefore(ctx context.Context, cutoff time.Time) (updated int64, err error)
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, patientID string, request *requests.BookAppointment) (*responses.Appointment, error)
}

type AppointmentEventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, appointment *models.Appointment) error
}
