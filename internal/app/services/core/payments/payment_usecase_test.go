package payments

import (
	"context"
	"errors"
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) CreateAppointment(ctx context.Context, request *requests.CreateBooking) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) FindAll(ctx context.Context, sessionData string, queryParams *requests.QueryParams) ([]responses.Appointment, error) {
	args := m.Called(ctx, sessionData, queryParams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentService) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus, paymentStatus models.AppointmentPaymentStatus) error {
	args := m.Called(ctx, appointmentID, status, paymentStatus)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByToken(ctx context.Context, paymentToken string) (*models.Transaction, error) {
	args := m.Called(ctx, paymentToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateTransaction(ctx context.Context, request *requests.WebpayCreateTransaction) (*responses.PaymentSession, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentSession), args.Error(1)
}

func (m *MockPaymentGateway) CommitTransaction(ctx context.Context, token string) (*responses.WebpayCommitResult, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.WebpayCommitResult), args.Error(1)
}

type MockRedirectInitiator struct {
	mock.Mock
}

func (m *MockRedirectInitiator) Initiate(redirectURL, token string) string {
	args := m.Called(redirectURL, token)
	return args.String(0)
}

type paymentFixture struct {
	sessions     *MockSessionService
	appointments *MockAppointmentService
	transactions *MockTransactionRepository
	gateway      *MockPaymentGateway
	redirect     *MockRedirectInitiator
	usecase      *paymentUsecase
}

func newPaymentFixture() *paymentFixture {
	sessions := new(MockSessionService)
	appointments := new(MockAppointmentService)
	transactions := new(MockTransactionRepository)
	gateway := new(MockPaymentGateway)
	redirect := new(MockRedirectInitiator)

	usecase := &paymentUsecase{
		TransactionRepository: transactions,
		AppointmentService:    appointments,
		PaymentGateway:        gateway,
		RedirectInitiator:     redirect,
		SessionService:        sessions,
		InternalConfig: &config.InternalConfig{
			Webpay: config.Webpay{ReturnUrl: "http://localhost:8080/api/v1/payments/return"},
		},
		Log: zap.NewNop(),
	}

	return &paymentFixture{
		sessions:     sessions,
		appointments: appointments,
		transactions: transactions,
		gateway:      gateway,
		redirect:     redirect,
		usecase:      usecase,
	}
}

func patientSessionFixture() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		UserID:    "user-7",
		Role:      "patient",
		PatientID: "patient-7",
	}
}

func TestRetryPayment_GatewayFailureIsWarningWithGatewayError(t *testing.T) {
	fixture := newPaymentFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-data").
		Return(patientSessionFixture(), nil)
	fixture.appointments.On("FindByID", mock.Anything, "43").
		Return(&models.Appointment{ID: "43", PatientID: "patient-7", PaymentStatus: models.AppointmentPaymentFailed}, nil)
	fixture.transactions.On("FindByID", mock.Anything, "43").
		Return(&models.Transaction{ID: "43", Amount: 25000}, nil)
	fixture.gateway.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrWebpayCreateTransaction(errors.New("gateway rejected the request")))

	outcome, err := fixture.usecase.RetryPayment(context.Background(), "session-data", "43")

	assert.NoError(t, err)
	assert.Equal(t, responses.BookingPaymentWarning, outcome.Status)
	assert.Equal(t, responses.BookingStagePayment, outcome.Stage)
	assert.Equal(t, "43", outcome.AppointmentID)
	assert.Contains(t, outcome.Message, constvars.ErrClientPaymentGatewayUnavailable,
		"warning must carry the gateway's error, not only the generic notice")

	fixture.redirect.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
	fixture.transactions.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything)
}

func TestRetryPayment_RejectsForeignAppointment(t *testing.T) {
	fixture := newPaymentFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-data").
		Return(patientSessionFixture(), nil)
	fixture.appointments.On("FindByID", mock.Anything, "43").
		Return(&models.Appointment{ID: "43", PatientID: "patient-9"}, nil)

	outcome, err := fixture.usecase.RetryPayment(context.Background(), "session-data", "43")

	assert.Nil(t, outcome)
	assert.Equal(t, constvars.ErrClientAppointmentNotFound, exceptions.ClientMessage(err))

	fixture.gateway.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestRetryPayment_RejectsAlreadyPaidAppointment(t *testing.T) {
	fixture := newPaymentFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-data").
		Return(patientSessionFixture(), nil)
	fixture.appointments.On("FindByID", mock.Anything, "43").
		Return(&models.Appointment{ID: "43", PatientID: "patient-7", PaymentStatus: models.AppointmentPaymentCompleted}, nil)

	outcome, err := fixture.usecase.RetryPayment(context.Background(), "session-data", "43")

	assert.Nil(t, outcome)
	assert.Equal(t, constvars.ErrClientAppointmentAlreadyPaid, exceptions.ClientMessage(err))

	fixture.gateway.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestRetryPayment_SuccessGeneratesFreshSession(t *testing.T) {
	fixture := newPaymentFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-data").
		Return(patientSessionFixture(), nil)
	fixture.appointments.On("FindByID", mock.Anything, "43").
		Return(&models.Appointment{ID: "43", PatientID: "patient-7", PaymentStatus: models.AppointmentPaymentFailed}, nil)
	fixture.transactions.On("FindByID", mock.Anything, "43").
		Return(&models.Transaction{ID: "43", Amount: 25000}, nil)
	fixture.gateway.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&responses.PaymentSession{Token: "T2", RedirectURL: "https://pay.example/form"}, nil)
	fixture.transactions.On("UpdateTransaction", mock.Anything, mock.Anything).
		Return(&models.Transaction{ID: "43"}, nil)
	fixture.redirect.On("Initiate", "https://pay.example/form", "T2").
		Return("<form></form>")

	outcome, err := fixture.usecase.RetryPayment(context.Background(), "session-data", "43")

	assert.NoError(t, err)
	assert.Equal(t, responses.BookingPendingRedirect, outcome.Status)
	assert.Equal(t, "T2", outcome.PaymentToken)
	assert.NotEmpty(t, outcome.RedirectHTML)

	fixture.redirect.AssertNumberOfCalls(t, "Initiate", 1)
}
