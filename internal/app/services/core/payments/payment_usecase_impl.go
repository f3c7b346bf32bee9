package payments

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

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	TransactionRepository contracts.TransactionRepository
	AppointmentService    contracts.AppointmentService
	PaymentGateway        contracts.PaymentGatewayService
	RedirectInitiator     contracts.RedirectInitiator
	SessionService        contracts.SessionService
	UserRepository        contracts.UserRepository
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	transactionRepository contracts.TransactionRepository,
	appointmentService contracts.AppointmentService,
	paymentGateway contracts.PaymentGatewayService,
	redirectInitiator contracts.RedirectInitiator,
	sessionService contracts.SessionService,
	userRepository contracts.UserRepository,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			TransactionRepository: transactionRepository,
			AppointmentService:    appointmentService,
			PaymentGateway:        paymentGateway,
			RedirectInitiator:     redirectInitiator,
			SessionService:        sessionService,
			UserRepository:        userRepository,
			NotificationService:   notificationService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// ConfirmPayment commits the Webpay transaction behind a returned token and
// settles both the transaction and its appointment.
func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, token string) (*responses.PaymentConfirmation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentTokenKey, token),
	)

	transaction, err := uc.TransactionRepository.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("no transaction for token %s", token))
	}

	commitResult, err := uc.PaymentGateway.CommitTransaction(ctx, token)
	if err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transaction.ID),
			zap.Error(err),
		)
		return nil, err
	}

	authorized := commitResult.Status == constvars.WebpayStatusAuthorized && commitResult.ResponseCode == 0

	if authorized {
		transaction.StatusPayment = models.TransactionCompleted
	} else {
		transaction.StatusPayment = models.TransactionFailed
	}
	_, err = uc.TransactionRepository.UpdateTransaction(ctx, transaction)
	if err != nil {
		return nil, err
	}

	appointmentStatus := models.AppointmentPending
	paymentStatus := models.AppointmentPaymentFailed
	if authorized {
		appointmentStatus = models.AppointmentBooked
		paymentStatus = models.AppointmentPaymentCompleted
	}
	err = uc.AppointmentService.UpdateStatus(ctx, transaction.ID, appointmentStatus, paymentStatus)
	if err != nil {
		return nil, err
	}

	if authorized {
		uc.notifyPatient(ctx, transaction)
	}

	uc.Log.Info("paymentUsecase.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, transaction.ID),
		zap.String(constvars.LoggingPaymentStageKey, commitResult.Status),
	)
	return &responses.PaymentConfirmation{
		AppointmentID: transaction.ID,
		PaymentStatus: string(transaction.StatusPayment),
		Status:        commitResult.Status,
	}, nil
}

// RetryPayment opens a fresh payment session for an appointment whose earlier
// payment attempt failed. The appointment itself is reused as is.
func (uc *paymentUsecase) RetryPayment(ctx context.Context, sessionData, appointmentID string) (*responses.BookingOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.RetryPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentService.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if session.IsPatient() && appointment.PatientID != session.PatientID {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s does not belong to patient %s", appointmentID, session.PatientID))
	}
	if appointment.PaymentStatus == models.AppointmentPaymentCompleted {
		return nil, exceptions.ErrAppointmentAlreadyPaid(fmt.Errorf("appointment %s already paid", appointmentID))
	}

	transaction, err := uc.TransactionRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("no transaction for appointment %s", appointmentID))
	}

	// A fresh buy order per attempt; the gateway treats each session as new.
	transaction.BuyOrder = utils.GenerateBuyOrder(appointmentID)

	paymentSession, err := uc.PaymentGateway.CreateTransaction(ctx, &requests.WebpayCreateTransaction{
		BuyOrder:  transaction.BuyOrder,
		SessionID: appointmentID,
		Amount:    transaction.Amount,
		ReturnURL: uc.InternalConfig.Webpay.ReturnUrl,
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.RetryPayment error opening payment session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return &responses.BookingOutcome{
			Status:        responses.BookingPaymentWarning,
			Stage:         responses.BookingStagePayment,
			Message:       constvars.BookingPaymentWarningMessage + ": " + exceptions.ClientMessage(err),
			AppointmentID: appointmentID,
		}, nil
	}

	transaction.PaymentToken = paymentSession.Token
	transaction.PaymentLink = paymentSession.RedirectURL
	transaction.StatusPayment = models.TransactionPending
	_, err = uc.TransactionRepository.UpdateTransaction(ctx, transaction)
	if err != nil {
		uc.Log.Warn("paymentUsecase.RetryPayment could not update transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}

	redirectHTML := uc.RedirectInitiator.Initiate(paymentSession.RedirectURL, paymentSession.Token)

	uc.Log.Info("paymentUsecase.RetryPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPaymentTokenKey, paymentSession.Token),
	)
	return &responses.BookingOutcome{
		Status:        responses.BookingPendingRedirect,
		Message:       constvars.PaymentRetrySuccessMessage,
		AppointmentID: appointmentID,
		PaymentToken:  paymentSession.Token,
		RedirectHTML:  redirectHTML,
	}, nil
}

// notifyPatient queues the confirmation email. Best effort: the payment is
// already settled, a broker outage must not fail the confirmation.
func (uc *paymentUsecase) notifyPatient(ctx context.Context, transaction *models.Transaction) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByID(ctx, transaction.PatientID)
	if err != nil || user == nil {
		uc.Log.Warn("paymentUsecase.notifyPatient could not load patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, transaction.PatientID),
			zap.Error(err),
		)
		return
	}

	notification := &models.EmailNotification{
		To:      user.Email,
		Subject: "Tu cita está confirmada",
		Body:    fmt.Sprintf("Hola %s, tu pago fue recibido y tu cita quedó confirmada.", user.FullName),
	}
	err = uc.NotificationService.PublishEmail(ctx, notification)
	if err != nil {
		uc.Log.Warn("paymentUsecase.notifyPatient could not publish notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, user.Email),
			zap.Error(err),
		)
	}
}
