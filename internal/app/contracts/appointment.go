package contracts

import (
	"context"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"time"
)

// AppointmentService owns the durable appointment store. CreateAppointment
// performs exactly one durable write and does not retry; retry policy belongs
// to callers.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, request *requests.CreateBooking) (*models.Appointment, error)
	FindAll(ctx context.Context, sessionData string, queryParams *requests.QueryParams) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus, paymentStatus models.AppointmentPaymentStatus) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	CountOverlapping(ctx context.Context, doctorID string, start, end time.Time) (int64, error)
}
