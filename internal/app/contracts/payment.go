package contracts

import (
	"context"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/dto/responses"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	FindByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	FindByToken(ctx context.Context, paymentToken string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
}

type PaymentUsecase interface {
	ConfirmPayment(ctx context.Context, token string) (*responses.PaymentConfirmation, error)
	RetryPayment(ctx context.Context, sessionData, appointmentID string) (*responses.BookingOutcome, error)
}
