package contracts

import (
	"context"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
)

// PaymentGatewayService talks to the external payment processor. The gateway
// offers no idempotency guarantee: calling CreateTransaction twice for the
// same appointment may open two payment sessions.
type PaymentGatewayService interface {
	CreateTransaction(ctx context.Context, request *requests.WebpayCreateTransaction) (*responses.PaymentSession, error)
	CommitTransaction(ctx context.Context, token string) (*responses.WebpayCommitResult, error)
}
