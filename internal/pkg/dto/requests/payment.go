package requests

// WebpayCreateTransaction mirrors the body of POST /transactions on the
// Webpay Plus REST API.
type WebpayCreateTransaction struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int    `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type RetryPayment struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
}
