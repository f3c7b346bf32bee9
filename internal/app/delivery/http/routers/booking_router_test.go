package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
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

type MockBookingOrchestrator struct {
	mock.Mock
}

func (m *MockBookingOrchestrator) ConfirmAndPay(ctx context.Context, request *requests.CreateBooking) *responses.BookingOutcome {
	args := m.Called(ctx, request)
	return args.Get(0).(*responses.BookingOutcome)
}

func TestBookingRouter_ConfirmAndPay(t *testing.T) {
	logger := zap.NewNop()

	jwtSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        jwtSecret,
			ExpTimeInHour: 1,
		},
	}

	mockSessionService := new(MockSessionService)
	mockOrchestrator := new(MockBookingOrchestrator)

	bookingController := controllers.NewBookingController(logger, mockOrchestrator, mockSessionService)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		SessionService: mockSessionService,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController)

	sessionJSON := `{"session_id":"session-1","user_id":"user-7","role":"patient","patient_id":"patient-7"}`
	token, err := utils.GenerateSessionJWT("session-1", jwtSecret, 1)
	assert.NoError(t, err)

	t.Run("ConfirmAndPay with valid session returns outcome", func(t *testing.T) {
		mockSessionService.On("GetSessionData", mock.Anything, "session-1").Return(sessionJSON, nil)
		mockSessionService.On("ParseSessionData", mock.Anything, sessionJSON).Return(&models.Session{
			SessionID: "session-1",
			UserID:    "user-7",
			Role:      "patient",
			PatientID: "patient-7",
		}, nil)
		mockOrchestrator.On("ConfirmAndPay", mock.Anything, mock.MatchedBy(func(request *requests.CreateBooking) bool {
			return request.PatientID == "patient-7"
		})).Return(&responses.BookingOutcome{
			Status:        responses.BookingPendingRedirect,
			Message:       "appointment created, redirecting to payment",
			AppointmentID: "42",
			PaymentToken:  "T1",
		})

		requestBody := map[string]interface{}{
			"doctor_id": "doctor-12",
			"date":      "2026-09-14",
			"time":      "10:30",
			"type":      "consulta",
			"amount":    25000,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response responses.ResponseDTO
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		mockOrchestrator.AssertExpectations(t)
	})

	t.Run("ConfirmAndPay without token returns 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("ConfirmAndPay with garbage token returns 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
