package contracts

import (
	"context"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
)

// BookingOrchestrator sequences appointment creation and payment initiation.
// It never returns an error: every failure is folded into the outcome with a
// stage tag, so callers can always tell which step failed.
type BookingOrchestrator interface {
	ConfirmAndPay(ctx context.Context, request *requests.CreateBooking) *responses.BookingOutcome
}
