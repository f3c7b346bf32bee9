package controllers

import (
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	onceDoctorController.Do(func() {
		doctorControllerInstance = &DoctorController{
			Log:           logger,
			DoctorUsecase: doctorUsecase,
		}
	})
	return doctorControllerInstance
}

func (ctrl *DoctorController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.DoctorUsecase.RegisterDoctor(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, result)
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	result, err := ctrl.DoctorUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, result)
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	result, err := ctrl.DoctorUsecase.FindByID(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, result)
}
