package controllers

import (
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentService contracts.AppointmentService
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentService contracts.AppointmentService) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentService: appointmentService,
		}
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	queryParams := &requests.QueryParams{
		Status: r.URL.Query().Get("status"),
	}

	result, err := ctrl.AppointmentService.FindAll(r.Context(), sessionData, queryParams)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, result)
}
