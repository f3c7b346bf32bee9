package requests

import "time"

// CreateBooking is the patient-submitted form behind one booking attempt.
// PatientID is resolved from the session, never from the request body.
type CreateBooking struct {
	PatientID string `json:"-" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Type      string `json:"type" validate:"required,oneof=consulta control examen"`
	Symptoms  string `json:"symptoms" validate:"max=2000"`
	Amount    int    `json:"amount" validate:"required,gt=0"`

	// StartTime is derived from Date and Time by the orchestrator.
	StartTime time.Time `json:"-"`
}
