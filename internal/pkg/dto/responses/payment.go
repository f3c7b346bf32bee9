package responses

// PaymentSession is a gateway-issued token and redirect URL pair. It is used
// exactly once to hand the browser to the payment page, never cached.
type PaymentSession struct {
	Token       string `json:"token"`
	RedirectURL string `json:"url"`
}

type WebpayCommitResult struct {
	BuyOrder          string `json:"buy_order"`
	SessionID         string `json:"session_id"`
	Status            string `json:"status"`
	Amount            int    `json:"amount"`
	AuthorizationCode string `json:"authorization_code"`
	ResponseCode      int    `json:"response_code"`
	TransactionDate   string `json:"transaction_date"`
}

type PaymentConfirmation struct {
	AppointmentID string `json:"appointment_id"`
	PaymentStatus string `json:"payment_status"`
	Status        string `json:"status"`
}
