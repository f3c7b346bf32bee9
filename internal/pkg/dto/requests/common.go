package requests

type QueryParams struct {
	PatientID string
	DoctorID  string
	Status    string
}
