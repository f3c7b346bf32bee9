package messages

import (
	"context"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	messageUsecaseInstance contracts.MessageUsecase
	onceMessageUsecase     sync.Once
)

type messageUsecase struct {
	MessageRepository contracts.MessageRepository
	SessionService    contracts.SessionService
	Log               *zap.Logger
}

func NewMessageUsecase(
	messageRepository contracts.MessageRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.MessageUsecase {
	onceMessageUsecase.Do(func() {
		messageUsecaseInstance = &messageUsecase{
			MessageRepository: messageRepository,
			SessionService:    sessionService,
			Log:               logger,
		}
	})
	return messageUsecaseInstance
}

func (uc *messageUsecase) SendMessage(ctx context.Context, sessionData string, request *requests.SendMessage) (*responses.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	request.SenderID = session.UserID
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	message := &models.Message{
		SenderID:    request.SenderID,
		RecipientID: request.RecipientID,
		Body:        request.Body,
		SentAt:      time.Now(),
	}
	message, err = uc.MessageRepository.CreateMessage(ctx, message)
	if err != nil {
		uc.Log.Error("messageUsecase.SendMessage error creating message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("messageUsecase.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.ID),
	)
	return &responses.Message{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Body:        message.Body,
		SentAt:      message.SentAt,
		Read:        message.Read,
	}, nil
}

func (uc *messageUsecase) FindConversation(ctx context.Context, sessionData, otherUserID string) ([]responses.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.FindConversation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	messages, err := uc.MessageRepository.FindConversation(ctx, session.UserID, otherUserID)
	if err != nil {
		return nil, err
	}

	// Reading a conversation marks the other side's messages as seen.
	err = uc.MessageRepository.MarkConversationRead(ctx, session.UserID, otherUserID)
	if err != nil {
		uc.Log.Warn("messageUsecase.FindConversation could not mark conversation read",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	result := make([]responses.Message, 0, len(messages))
	for _, message := range messages {
		result = append(result, responses.Message{
			ID:          message.ID,
			SenderID:    message.SenderID,
			RecipientID: message.RecipientID,
			Body:        message.Body,
			SentAt:      message.SentAt,
			Read:        message.Read,
		})
	}
	return result, nil
}
