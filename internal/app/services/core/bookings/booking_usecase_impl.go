package bookings

import (
	"context"
	"fmt"
	"nanomed-service/internal/app/config"
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
	bookingUsecaseInstance contracts.BookingOrchestrator
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	AppointmentService    contracts.AppointmentService
	TransactionRepository contracts.TransactionRepository
	PaymentGateway        contracts.PaymentGatewayService
	RedirectInitiator     contracts.RedirectInitiator
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewBookingUsecase(
	appointmentService contracts.AppointmentService,
	transactionRepository contracts.TransactionRepository,
	paymentGateway contracts.PaymentGatewayService,
	redirectInitiator contracts.RedirectInitiator,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingOrchestrator {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			AppointmentService:    appointmentService,
			TransactionRepository: transactionRepository,
			PaymentGateway:        paymentGateway,
			RedirectInitiator:     redirectInitiator,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

// ConfirmAndPay runs the whole booking sequence and folds every failure into
// the outcome. The invariants it keeps:
//
//   - an invalid request fails before any store or gateway is touched
//   - appointment creation failure means nothing was persisted for payment
//   - once the appointment exists, a payment failure (error or panic) is
//     reported as a warning that carries the appointment ID, never as a
//     plain failure, and the appointment is not rolled back
//   - the redirect is initiated exactly once, only when the payment session
//     was opened
func (uc *bookingUsecase) ConfirmAndPay(ctx context.Context, request *requests.CreateBooking) *responses.BookingOutcome {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if request == nil {
		uc.Log.Info("bookingUsecase.ConfirmAndPay rejected empty request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.BookingOutcome{
			Status:  responses.BookingFailed,
			Stage:   responses.BookingStageValidation,
			Message: constvars.ErrClientIncompleteFormData,
		}
	}
	uc.Log.Info("bookingUsecase.ConfirmAndPay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	if err := uc.validate(request); err != nil {
		uc.Log.Info("bookingUsecase.ConfirmAndPay rejected invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.BookingOutcome{
			Status:  responses.BookingFailed,
			Stage:   responses.BookingStageValidation,
			Message: exceptions.ClientMessage(err),
		}
	}

	appointment, err := uc.AppointmentService.CreateAppointment(ctx, request)
	if err != nil {
		uc.Log.Error("bookingUsecase.ConfirmAndPay error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.BookingOutcome{
			Status:  responses.BookingFailed,
			Stage:   responses.BookingStageCreation,
			Message: exceptions.ClientMessage(err),
		}
	}

	session, err := uc.createPaymentSession(ctx, appointment.ID, request.Amount)
	if err != nil {
		uc.Log.Error("bookingUsecase.ConfirmAndPay error opening payment session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return &responses.BookingOutcome{
			Status:        responses.BookingPaymentWarning,
			Stage:         responses.BookingStagePayment,
			Message:       constvars.BookingPaymentWarningMessage + ": " + exceptions.ClientMessage(err),
			AppointmentID: appointment.ID,
		}
	}

	redirectHTML := uc.RedirectInitiator.Initiate(session.RedirectURL, session.Token)

	uc.recordPaymentSession(ctx, appointment.ID, session)

	uc.Log.Info("bookingUsecase.ConfirmAndPay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPaymentTokenKey, session.Token),
	)
	return &responses.BookingOutcome{
		Status:        responses.BookingPendingRedirect,
		Message:       constvars.BookingPendingRedirectMessage,
		AppointmentID: appointment.ID,
		PaymentToken:  session.Token,
		RedirectHTML:  redirectHTML,
	}
}

func (uc *bookingUsecase) validate(request *requests.CreateBooking) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	startTime, err := time.Parse("2006-01-02 15:04", request.Date+" "+request.Time)
	if err != nil {
		return exceptions.ErrCannotParseTime(err)
	}
	request.StartTime = startTime
	return nil
}

// createPaymentSession calls the gateway behind a recover so a panicking
// payment client degrades into the warning path instead of killing the
// request.
func (uc *bookingUsecase) createPaymentSession(ctx context.Context, appointmentID string, amount int) (session *responses.PaymentSession, err error) {
	defer func() {
		if r := recover(); r != nil {
			session = nil
			err = fmt.Errorf("payment gateway panic: %v", r)
		}
	}()

	transaction, err := uc.TransactionRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	buyOrder := ""
	sessionID := appointmentID
	if transaction != nil {
		buyOrder = transaction.BuyOrder
	}
	if buyOrder == "" {
		buyOrder = utils.GenerateBuyOrder(appointmentID)
	}

	return uc.PaymentGateway.CreateTransaction(ctx, &requests.WebpayCreateTransaction{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    amount,
		ReturnURL: uc.InternalConfig.Webpay.ReturnUrl,
	})
}

// recordPaymentSession stores the gateway token and link on the transaction.
// Best effort: the outcome is already decided, a store failure here only
// loses the retry shortcut.
func (uc *bookingUsecase) recordPaymentSession(ctx context.Context, appointmentID string, session *responses.PaymentSession) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	transaction, err := uc.TransactionRepository.FindByID(ctx, appointmentID)
	if err != nil || transaction == nil {
		uc.Log.Warn("bookingUsecase.recordPaymentSession could not load transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return
	}

	transaction.PaymentToken = session.Token
	transaction.PaymentLink = session.RedirectURL
	transaction.StatusPayment = models.TransactionPending
	_, err = uc.TransactionRepository.UpdateTransaction(ctx, transaction)
	if err != nil {
		uc.Log.Warn("bookingUsecase.recordPaymentSession could not update transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}
