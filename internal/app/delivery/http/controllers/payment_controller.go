package controllers

import (
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
		}
	})
	return paymentControllerInstance
}

// Return is the Webpay return URL. The gateway sends the browser back here
// with the token in the token_ws field, either as a form POST or a query
// parameter.
func (ctrl *PaymentController) Return(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(constvars.WebpayTokenFormField)
	if token == "" {
		if err := r.ParseForm(); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
			return
		}
		token = r.FormValue(constvars.WebpayTokenFormField)
	}
	if token == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	result, err := ctrl.PaymentUsecase.ConfirmPayment(r.Context(), token)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentCommittedSuccessMessage, result)
}

// Retry opens a fresh payment session for an appointment stuck in pending
// payment.
func (ctrl *PaymentController) Retry(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.RetryPayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	outcome, err := ctrl.PaymentUsecase.RetryPayment(r.Context(), sessionData, request.AppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, outcome.Message, outcome)
}
