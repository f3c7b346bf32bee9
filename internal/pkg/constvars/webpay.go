package constvars

// Webpay Plus REST API conventions. Field and header names are dictated by
// Transbank, not by this service.
const (
	WebpayTransactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

	HeaderTbkApiKeyID     = "Tbk-Api-Key-Id"
	HeaderTbkApiKeySecret = "Tbk-Api-Key-Secret"

	WebpayTokenFormField = "token_ws"

	WebpayStatusAuthorized = "AUTHORIZED"
	WebpayStatusFailed     = "FAILED"
)
