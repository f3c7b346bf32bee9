package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingAppointmentIDKey = "appointment_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingTransactionIDKey = "transaction_id"
	LoggingPaymentTokenKey  = "payment_token"
	LoggingPaymentStageKey  = "payment_stage"
	LoggingDocumentIDKey    = "document_id"
	LoggingMessageIDKey     = "message_id"
	LoggingBucketNameKey    = "bucket_name"
	LoggingObjectNameKey    = "object_name"
	LoggingQueueNameKey     = "queue_name"
	LoggingEmailKey         = "email"
)
