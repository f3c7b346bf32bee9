package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	PatientID string    `json:"patient_id,omitempty"`
	DoctorID  string    `json:"doctor_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsPatient() bool {
	return s.Role == "patient"
}

func (s *Session) IsDoctor() bool {
	return s.Role == "doctor"
}

func (s *Session) IsNotPatient() bool {
	return !s.IsPatient()
}
