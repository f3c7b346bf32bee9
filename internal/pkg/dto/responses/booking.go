package responses

type BookingOutcomeStatus string

const (
	BookingPendingRedirect BookingOutcomeStatus = "pending_redirect"
	BookingPaymentWarning  BookingOutcomeStatus = "payment_warning"
	BookingFailed          BookingOutcomeStatus = "failed"
)

type BookingStage string

const (
	BookingStageValidation BookingStage = "validation"
	BookingStageCreation   BookingStage = "creation"
	BookingStagePayment    BookingStage = "payment"
)

// BookingOutcome is the orchestrator's whole answer. Failures never escape as
// raw errors; they are folded into Status, Stage and Message so the caller can
// tell "nothing happened" apart from "appointment exists but payment failed".
type BookingOutcome struct {
	Status        BookingOutcomeStatus `json:"status"`
	Stage         BookingStage         `json:"stage,omitempty"`
	Message       string               `json:"message"`
	AppointmentID string               `json:"appointment_id,omitempty"`
	PaymentToken  string               `json:"payment_token,omitempty"`
	RedirectHTML  string               `json:"redirect_html,omitempty"`
}
