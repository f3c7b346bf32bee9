package contracts

import (
	"context"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	FindConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error)
	MarkConversationRead(ctx context.Context, recipientID, senderID string) error
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, sessionData string, request *requests.SendMessage) (*responses.Message, error)
	FindConversation(ctx context.Context, sessionData, otherUserID string) ([]responses.Message, error)
}
