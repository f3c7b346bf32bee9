package constvars

const (
	// Auth
	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	// Booking
	BookingPendingRedirectMessage = "appointment created, redirecting to payment"
	BookingPaymentWarningMessage  = "appointment created but payment could not be started"

	// Appointments
	GetAppointmentSuccessMessage    = "appointments retrieved successfully"
	CreateAppointmentSuccessMessage = "appointment created successfully"

	// Doctors
	GetDoctorSuccessMessage    = "doctors retrieved successfully"
	CreateDoctorSuccessMessage = "doctor registered successfully"

	// Payments
	PaymentCommittedSuccessMessage = "payment confirmed successfully"
	PaymentRetrySuccessMessage     = "new payment session created"

	// Documents
	UploadDocumentSuccessMessage = "document uploaded successfully"
	GetDocumentSuccessMessage    = "documents retrieved successfully"

	// Messages
	SendMessageSuccessMessage = "message sent successfully"
	GetMessageSuccessMessage  = "messages retrieved successfully"
)
