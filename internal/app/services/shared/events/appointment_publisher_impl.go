package events

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/drivers/messaging"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// AppointmentBookedEvent is the message body published after a booking is stored.
type AppointmentBookedEvent struct {
	Event            string  `json:"event"`
	AppointmentID    string  `json:"appointment_id"`
	DoctorID         string  `json:"doctor_id"`
	PatientID        string  `json:"patient_id"`
	AppointmentDate  string  `json:"appointment_date"`
	EndTime          string  `json:"end_time"`
	ConsultationType string  `json:"consultation_type"`
	ConsultationFee  float64 `json:"consultation_fee"`
	MeetingLink      string  `json:"meeting_link"`
	OccurredAt       string  `json:"occurred_at"`
}

// channelPublisher is the subset of *amqp091.Channel the publisher needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type appointmentPublisher struct {
	channel channelPublisher
	queue   string
}

func NewAppointmentPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.AppointmentEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if err := messaging.DeclareDurableQueue(channel, queue); err != nil {
		return nil, err
	}
	return &appointmentPublisher{channel: channel, queue: queue}, nil
}

func NewAppointmentBookedEvent(appointment *models.Appointment) AppointmentBookedEvent {
	return AppointmentBookedEvent{
		Event:            constvars.EventAppointmentBooked,
		AppointmentID:    appointment.ID.Hex(),
		DoctorID:         appointment.DoctorID.Hex(),
		PatientID:        appointment.PatientID.Hex(),
		AppointmentDate:  utils.FormatISO8601(appointment.AppointmentDate),
		EndTime:          utils.FormatISO8601(appointment.EndTime),
		ConsultationType: appointment.ConsultationType,
		ConsultationFee:  appointment.ConsultationFee,
		MeetingLink:      appointment.MeetingLink,
		OccurredAt:       utils.FormatISO8601(time.Now()),
	}
}

func (p *appointmentPublisher) PublishAppointmentBooked(ctx context.Context, appointment *models.Appointment) error {
	body, err := json.Marshal(NewAppointmentBookedEvent(appointment))
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         constvars.EventAppointmentBooked,
		MessageId:    appointment.ID.Hex(),
		Timestamp:    time.Now(),
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopAppointmentPublisher is used when messaging is disabled.
func NewNoopAppointmentPublisher() contracts.AppointmentEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishAppointmentBooked(ctx context.Context, appointment *models.Appointment) error {
	return nil
}
