package constvars

const (
	NanomedRolePatient = "patient"
	NanomedRoleDoctor  = "doctor"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	CurrencyChileanPeso = "CLP"
)

const AppointmentSlotDurationInMinutes = 30

const (
	RedisSessionKeyFormat = "nanomed:session:%s"
)

const (
	EmailBasicMessageFormat = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n"
)

const ResponseUnknown = "unknown"
