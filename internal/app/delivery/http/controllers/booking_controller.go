package controllers

import (
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log                 *zap.Logger
	BookingOrchestrator contracts.BookingOrchestrator
	SessionService      contracts.SessionService
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingOrchestrator contracts.BookingOrchestrator, sessionService contracts.SessionService) *BookingController {
	onceBookingController.Do(func() {
		bookingControllerInstance = &BookingController{
			Log:                 logger,
			BookingOrchestrator: bookingOrchestrator,
			SessionService:      sessionService,
		}
	})
	return bookingControllerInstance
}

// ConfirmAndPay drives the booking flow. The orchestrator never errors; the
// HTTP status is derived from the outcome it reports.
func (ctrl *BookingController) ConfirmAndPay(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	session, err := ctrl.SessionService.ParseSessionData(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if session.IsNotPatient() {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, "only patients can book appointments"))
		return
	}

	request := new(requests.CreateBooking)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// The patient always books for themselves.
	request.PatientID = session.PatientID

	outcome := ctrl.BookingOrchestrator.ConfirmAndPay(r.Context(), request)

	statusCode := constvars.StatusCreated
	if outcome.Status == responses.BookingFailed {
		statusCode = constvars.StatusBadRequest
		if outcome.Stage == responses.BookingStageCreation {
			statusCode = constvars.StatusConflict
		}
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: outcome.Status != responses.BookingFailed,
		Message: outcome.Message,
		Data:    outcome,
	})
}
