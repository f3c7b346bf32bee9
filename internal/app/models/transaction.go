package models

import "time"

type TransactionStatusPayment string

const (
	TransactionPending   TransactionStatusPayment = "pending"
	TransactionCompleted TransactionStatusPayment = "completed"
	TransactionFailed    TransactionStatusPayment = "failed"
)

// Transaction is keyed by the appointment it pays for. One appointment may
// accumulate several gateway tokens (retries); only the latest is kept here.
type Transaction struct {
	ID            string                   `bson:"_id,omitempty"`
	PatientID     string                   `bson:"patientId"`
	DoctorID      string                   `bson:"doctorId"`
	BuyOrder      string                   `bson:"buyOrder"`
	PaymentToken  string                   `bson:"paymentToken,omitempty"`
	PaymentLink   string                   `bson:"paymentLink,omitempty"`
	Amount        int                      `bson:"amount"`
	Currency      string                   `bson:"currency"`
	StatusPayment TransactionStatusPayment `bson:"statusPayment"`
	CreatedAt     time.Time                `bson:"createdAt"`
	UpdatedAt     time.Time                `bson:"updatedAt"`
}
