package bookings

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
	panicOnCreate bool
}

func (m *MockPaymentGateway) CreateTransaction(ctx context.Context, request *requests.WebpayCreateTransaction) (*responses.PaymentSession, error) {
	args := m.Called(ctx, request)
	if m.panicOnCreate {
		panic("gateway client blew up")
	}
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

type bookingFixture struct {
	usecase      *bookingUsecase
	appointments *MockAppointmentService
	transactions *MockTransactionRepository
	gateway      *MockPaymentGateway
	redirect     *MockRedirectInitiator
}

func newBookingFixture() *bookingFixture {
	appointments := new(MockAppointmentService)
	transactions := new(MockTransactionRepository)
	gateway := new(MockPaymentGateway)
	redirectInitiator := new(MockRedirectInitiator)

	usecase := &bookingUsecase{
		AppointmentService:    appointments,
		TransactionRepository: transactions,
		PaymentGateway:        gateway,
		RedirectInitiator:     redirectInitiator,
		InternalConfig: &config.InternalConfig{
			Webpay: config.Webpay{
				ReturnUrl: "http://localhost:8080/api/v1/payments/return",
			},
		},
		Log: zap.NewNop(),
	}

	return &bookingFixture{
		usecase:      usecase,
		appointments: appointments,
		transactions: transactions,
		gateway:      gateway,
		redirect:     redirectInitiator,
	}
}

func validBookingRequest() *requests.CreateBooking {
	return &requests.CreateBooking{
		PatientID: "patient-7",
		DoctorID:  "doctor-12",
		Date:      "2026-09-14",
		Time:      "10:30",
		Type:      "consulta",
		Symptoms:  "dolor de cabeza",
		Amount:    25000,
	}
}

func TestConfirmAndPay_NilRequestReturnsValidationFailure(t *testing.T) {
	fixture := newBookingFixture()

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), nil)

	assert.Equal(t, responses.BookingFailed, outcome.Status)
	assert.Equal(t, responses.BookingStageValidation, outcome.Stage)
	assert.NotEmpty(t, outcome.Message)
	assert.Empty(t, outcome.AppointmentID)

	fixture.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	fixture.gateway.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	fixture.redirect.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
}

func TestConfirmAndPay_InvalidRequestTouchesNothing(t *testing.T) {
	fixture := newBookingFixture()

	request := validBookingRequest()
	request.DoctorID = ""

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), request)

	assert.Equal(t, responses.BookingFailed, outcome.Status)
	assert.Equal(t, responses.BookingStageValidation, outcome.Stage)
	assert.NotEmpty(t, outcome.Message)
	assert.Empty(t, outcome.AppointmentID)

	fixture.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	fixture.gateway.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	fixture.redirect.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
}

func TestConfirmAndPay_MalformedTimeTouchesNothing(t *testing.T) {
	fixture := newBookingFixture()

	request := validBookingRequest()
	request.Date = "2026-02-30"

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), request)

	assert.Equal(t, responses.BookingFailed, outcome.Status)
	assert.Equal(t, responses.BookingStageValidation, outcome.Stage)

	fixture.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	fixture.gateway.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestConfirmAndPay_CreationFailureShortCircuitsPayment(t *testing.T) {
	fixture := newBookingFixture()

	fixture.appointments.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateBooking")).
		Return(nil, exceptions.ErrSlotNotAvailable(errors.New("doctor not available")))

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), validBookingRequest())

	assert.Equal(t, responses.BookingFailed, outcome.Status)
	assert.Equal(t, responses.BookingStageCreation, outcome.Stage)
	assert.Empty(t, outcome.AppointmentID)
	assert.Empty(t, outcome.PaymentToken)

	fixture.gateway.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	fixture.redirect.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
}

func TestConfirmAndPay_PaymentErrorIsWarningNotFailure(t *testing.T) {
	fixture := newBookingFixture()

	fixture.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
		Return(&models.Appointment{ID: "43"}, nil)
	fixture.transactions.On("FindByID", mock.Anything, "43").
		Return(&models.Transaction{ID: "43", BuyOrder: "nm-43-1"}, nil)
	fixture.gateway.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrWebpayCreateTransaction(errors.New("gateway rejected the request")))

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), validBookingRequest())

	assert.Equal(t, responses.BookingPaymentWarning, outcome.Status)
	assert.Equal(t, responses.BookingStagePayment, outcome.Stage)
	assert.Equal(t, "43", outcome.AppointmentID, "warning must carry the created appointment")
	assert.Contains(t, outcome.Message, constvars.ErrClientPaymentGatewayUnavailable,
		"warning must carry the gateway's error, not only the generic notice")
	assert.Empty(t, outcome.PaymentToken)

	fixture.redirect.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
}

func TestConfirmAndPay_PaymentPanicIsWarningNotFailure(t *testing.T) {
	fixture := newBookingFixture()

	fixture.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
		Return(&models.Appointment{ID: "43"}, nil)
	fixture.transactions.On("FindByID", mock.Anything, "43").
		Return(&models.Transaction{ID: "43", BuyOrder: "nm-43-1"}, nil)
	fixture.gateway.panicOnCreate = true
	fixture.gateway.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, nil)

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), validBookingRequest())

	assert.Equal(t, responses.BookingPaymentWarning, outcome.Status)
	assert.Equal(t, "43", outcome.AppointmentID)

	fixture.redirect.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything)
}

func TestConfirmAndPay_SuccessInitiatesRedirectExactlyOnce(t *testing.T) {
	fixture := newBookingFixture()

	fixture.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
		Return(&models.Appointment{ID: "42"}, nil)
	fixture.transactions.On("FindByID", mock.Anything, "42").
		Return(&models.Transaction{ID: "42", BuyOrder: "nm-42-1"}, nil)
	fixture.transactions.On("UpdateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
		Return(&models.Transaction{ID: "42"}, nil)
	fixture.gateway.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(request *requests.WebpayCreateTransaction) bool {
		return request.BuyOrder == "nm-42-1" && request.Amount == 25000
	})).Return(&responses.PaymentSession{Token: "T1", RedirectURL: "https://pay.example/form"}, nil)
	fixture.redirect.On("Initiate", "https://pay.example/form", "T1").Return("<form>redirect</form>")

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), validBookingRequest())

	assert.Equal(t, responses.BookingPendingRedirect, outcome.Status)
	assert.Equal(t, "42", outcome.AppointmentID)
	assert.Equal(t, "T1", outcome.PaymentToken)
	assert.Equal(t, "<form>redirect</form>", outcome.RedirectHTML)

	fixture.redirect.AssertNumberOfCalls(t, "Initiate", 1)
	fixture.gateway.AssertNumberOfCalls(t, "CreateTransaction", 1)
	fixture.appointments.AssertExpectations(t)
}

func TestConfirmAndPay_RecordFailureDoesNotChangeOutcome(t *testing.T) {
	fixture := newBookingFixture()

	fixture.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
		Return(&models.Appointment{ID: "42"}, nil)
	fixture.transactions.On("FindByID", mock.Anything, "42").
		Return(&models.Transaction{ID: "42", BuyOrder: "nm-42-1"}, nil).Once()
	fixture.gateway.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&responses.PaymentSession{Token: "T1", RedirectURL: "https://pay.example/form"}, nil)
	fixture.redirect.On("Initiate", "https://pay.example/form", "T1").Return("<form>redirect</form>")
	fixture.transactions.On("FindByID", mock.Anything, "42").
		Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("connection reset")))

	outcome := fixture.usecase.ConfirmAndPay(context.Background(), validBookingRequest())

	assert.Equal(t, responses.BookingPendingRedirect, outcome.Status)
	assert.Equal(t, "T1", outcome.PaymentToken)
}
