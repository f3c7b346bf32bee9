package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentBooked    AppointmentStatus = "booked"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type AppointmentPaymentStatus string

const (
	AppointmentPaymentPending   AppointmentPaymentStatus = "pending"
	AppointmentPaymentCompleted AppointmentPaymentStatus = "completed"
	AppointmentPaymentFailed    AppointmentPaymentStatus = "failed"
)

// Appointment is the durable booking record. A created appointment is never
// deleted when payment fails; it stays in pending payment state so a retry
// flow can pick it up.
type Appointment struct {
	ID            string                   `bson:"_id,omitempty"`
	PatientID     string                   `bson:"patientId"`
	DoctorID      string                   `bson:"doctorId"`
	Start         time.Time                `bson:"start"`
	Type          string                   `bson:"type"`
	Symptoms      string                   `bson:"symptoms,omitempty"`
	Status        AppointmentStatus        `bson:"status"`
	PaymentStatus AppointmentPaymentStatus `bson:"paymentStatus"`
	TimeModel     `bson:",inline"`
}
