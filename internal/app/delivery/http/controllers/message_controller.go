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

type MessageController struct {
	Log            *zap.Logger
	MessageUsecase contracts.MessageUsecase
}

var (
	messageControllerInstance *MessageController
	onceMessageController     sync.Once
)

func NewMessageController(logger *zap.Logger, messageUsecase contracts.MessageUsecase) *MessageController {
	onceMessageController.Do(func() {
		messageControllerInstance = &MessageController{
			Log:            logger,
			MessageUsecase: messageUsecase,
		}
	})
	return messageControllerInstance
}

func (ctrl *MessageController) Send(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.SendMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := ctrl.MessageUsecase.SendMessage(r.Context(), sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SendMessageSuccessMessage, result)
}

func (ctrl *MessageController) Conversation(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	otherUserID := chi.URLParam(r, "userID")

	result, err := ctrl.MessageUsecase.FindConversation(r.Context(), sessionData, otherUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMessageSuccessMessage, result)
}
