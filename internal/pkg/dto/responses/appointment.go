package responses

import "time"

type Appointment struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	AppointmentTime time.Time `json:"appointment_time"`
	Type            string    `json:"type"`
	Symptoms        string    `json:"symptoms,omitempty"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	PaymentLink     string    `json:"payment_link,omitempty"`
}
