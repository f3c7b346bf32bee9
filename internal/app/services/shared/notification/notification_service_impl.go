package notification

import (
	"context"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

type notificationService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewNotificationService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.NotificationService, error) {
	var initErr error
	onceNotificationService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}
		notificationServiceInstance = &notificationService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return notificationServiceInstance, nil
}

func (s *notificationService) PublishEmail(ctx context.Context, notification *models.EmailNotification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationService.PublishEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
		zap.String(constvars.LoggingEmailKey, notification.To),
	)

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("notificationService.PublishEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
