package controllers

import (
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
	InternalConfig  *config.InternalConfig
}

var (
	documentControllerInstance *DocumentController
	onceDocumentController     sync.Once
)

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase, internalConfig *config.InternalConfig) *DocumentController {
	onceDocumentController.Do(func() {
		documentControllerInstance = &DocumentController{
			Log:             logger,
			DocumentUsecase: documentUsecase,
			InternalConfig:  internalConfig,
		}
	})
	return documentControllerInstance
}

func (ctrl *DocumentController) Upload(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	maxSizeBytes := ctrl.InternalConfig.Minio.DocumentMaxUploadSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxSizeBytes)
	if err := r.ParseMultipartForm(maxSizeBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrIncompleteFormData(err))
		return
	}
	defer file.Close()

	result, err := ctrl.DocumentUsecase.Upload(r.Context(), sessionData, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, result)
}

func (ctrl *DocumentController) FindAll(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	result, err := ctrl.DocumentUsecase.FindAll(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentSuccessMessage, result)
}

func (ctrl *DocumentController) DownloadURL(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	documentID := chi.URLParam(r, "documentID")

	result, err := ctrl.DocumentUsecase.DownloadURL(r.Context(), sessionData, documentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentSuccessMessage, result)
}
