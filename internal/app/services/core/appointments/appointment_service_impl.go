package appointments

import (
	"context"
	"fmt"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	appointmentServiceInstance contracts.AppointmentService
	onceAppointmentService     sync.Once
)

type appointmentService struct {
	AppointmentRepository contracts.AppointmentRepository
	TransactionRepository contracts.TransactionRepository
	DoctorRepository      contracts.DoctorRepository
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

func NewAppointmentService(
	appointmentRepository contracts.AppointmentRepository,
	transactionRepository contracts.TransactionRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AppointmentService {
	onceAppointmentService.Do(func() {
		appointmentServiceInstance = &appointmentService{
			AppointmentRepository: appointmentRepository,
			TransactionRepository: transactionRepository,
			DoctorRepository:      doctorRepository,
			SessionService:        sessionService,
			Log:                   logger,
		}
	})
	return appointmentServiceInstance
}

// CreateAppointment performs the single durable write of the booking flow.
// The appointment and its pending transaction are persisted together; there
// is no retry and no rollback here.
func (svc *appointmentService) CreateAppointment(ctx context.Context, request *requests.CreateBooking) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("appointmentService.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	doctor, err := svc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", request.DoctorID))
	}

	slotEnd := request.StartTime.Add(constvars.AppointmentSlotDurationInMinutes * time.Minute)
	overlapping, err := svc.AppointmentRepository.CountOverlapping(ctx, request.DoctorID, request.StartTime, slotEnd)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, exceptions.ErrSlotNotAvailable(fmt.Errorf("doctor %s already booked at %s", request.DoctorID, request.StartTime))
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:     request.PatientID,
		DoctorID:      request.DoctorID,
		Start:         request.StartTime,
		Type:          request.Type,
		Symptoms:      request.Symptoms,
		Status:        models.AppointmentPending,
		PaymentStatus: models.AppointmentPaymentPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	appointment, err = svc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		svc.Log.Error("appointmentService.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	transaction := &models.Transaction{
		ID:            appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		BuyOrder:      utils.GenerateBuyOrder(appointment.ID),
		Amount:        request.Amount,
		Currency:      constvars.CurrencyChileanPeso,
		StatusPayment: models.TransactionPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	_, err = svc.TransactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		svc.Log.Error("appointmentService.CreateAppointment error inserting transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return nil, err
	}

	svc.Log.Info("appointmentService.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (svc *appointmentService) FindAll(ctx context.Context, sessionData string, queryParams *requests.QueryParams) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("appointmentService.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	session, err := svc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Patients only ever see their own appointments, doctors their own agenda.
	if session.IsPatient() {
		queryParams.PatientID = session.PatientID
	} else if session.IsDoctor() {
		queryParams.DoctorID = session.DoctorID
	}

	appointments, err := svc.AppointmentRepository.FindAll(ctx, queryParams)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		item := responses.Appointment{
			ID:              appointment.ID,
			Status:          string(appointment.Status),
			PaymentStatus:   string(appointment.PaymentStatus),
			AppointmentTime: appointment.Start,
			Type:            appointment.Type,
			Symptoms:        appointment.Symptoms,
			PatientID:       appointment.PatientID,
			DoctorID:        appointment.DoctorID,
		}

		doctor, err := svc.DoctorRepository.FindByID(ctx, appointment.DoctorID)
		if err == nil && doctor != nil {
			item.DoctorName = doctor.FullName
		}

		if appointment.PaymentStatus == models.AppointmentPaymentPending {
			transaction, err := svc.TransactionRepository.FindByID(ctx, appointment.ID)
			if err == nil && transaction != nil {
				item.PaymentLink = transaction.PaymentLink
			}
		}

		result = append(result, item)
	}
	return result, nil
}

func (svc *appointmentService) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := svc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}
	return appointment, nil
}

func (svc *appointmentService) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus, paymentStatus models.AppointmentPaymentStatus) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("appointmentService.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := svc.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	appointment.Status = status
	appointment.PaymentStatus = paymentStatus
	_, err = svc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	return err
}
