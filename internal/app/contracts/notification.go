package contracts

import (
	"context"
	"nanomed-service/internal/app/models"
)

type NotificationService interface {
	PublishEmail(ctx context.Context, notification *models.EmailNotification) error
}
