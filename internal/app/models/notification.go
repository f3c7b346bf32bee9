package models

// EmailNotification is the payload published to the mailer queue and consumed
// by the worker process.
type EmailNotification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
