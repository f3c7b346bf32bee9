package main

import (
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/drivers/logger"
	drivermailer "nanomed-service/internal/app/drivers/mailer"
	"nanomed-service/internal/app/drivers/messaging"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/app/services/shared/mailer"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// The worker drains the mailer queue and delivers emails over SMTP. Messages
// that cannot be decoded are dropped; delivery failures are requeued once by
// the broker.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	defer rabbitMQ.Close()

	smtpClient := drivermailer.NewSMTPClient(driverConfig)
	mailerService := mailer.NewMailerService(smtpClient)

	channel, err := rabbitMQ.Channel()
	if err != nil {
		log.Fatalf("Failed to open channel: %s", err.Error())
	}
	defer channel.Close()

	queueName := internalConfig.RabbitMQ.MailerQueue
	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to declare queue %s: %s", queueName, err.Error())
	}

	deliveries, err := channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to consume queue %s: %s", queueName, err.Error())
	}

	log.Infof("Worker consuming queue %s", queueName)

	go func() {
		for delivery := range deliveries {
			handleDelivery(log, mailerService, delivery)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Worker exiting")
}

func handleDelivery(log *logrus.Logger, mailerService mailer.MailerService, delivery amqp091.Delivery) {
	var notification models.EmailNotification
	err := json.Unmarshal(delivery.Body, &notification)
	if err != nil {
		log.Errorf("Dropping undecodable message: %s", err.Error())
		delivery.Nack(false, false)
		return
	}

	err = mailerService.SendEmail(notification.To, notification.Subject, notification.Body)
	if err != nil {
		log.Errorf("Failed to send email to %s: %s", notification.To, err.Error())
		delivery.Nack(false, !delivery.Redelivered)
		return
	}

	log.Infof("Email sent to %s", notification.To)
	delivery.Ack(false)
}
