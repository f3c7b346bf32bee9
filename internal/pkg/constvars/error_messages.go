package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"uuid":     "must be a valid UUID",
	"datetime": "must match the layout %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request, please check your input"
	ErrClientIncompleteFormData            = "incomplete form data"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotNotAvailable              = "requested time is already booked or not available"
	ErrClientAppointmentAlreadyPaid        = "appointment is already paid"
	ErrClientPaymentGatewayUnavailable     = "payment service is temporarily unavailable"
	ErrClientPaymentGatewayTimeout         = "payment service took too long to respond"
	ErrClientServerLongRespond             = "server took too long to respond, please try again later"
	ErrClientDocumentTooLarge              = "document exceeds the maximum allowed size"
	ErrClientDocumentNotFound              = "document not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON request body"
	ErrDevCannotMarshalJSON       = "cannot marshal value to JSON"
	ErrDevCannotParseTime         = "cannot parse date/time input"
	ErrDevCannotParseMultipart    = "cannot parse multipart form"
	ErrDevMissingRequestID        = "request ID not found in request context"
	ErrDevMissingSessionData      = "session data not found in request context"
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevInvalidCredentials      = "credentials do not match any user"
	ErrDevAuthTokenMissing        = "authorization token is missing"
	ErrDevAuthTokenInvalid        = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken       = "failed to generate JWT"
	ErrDevAuthSigningMethod       = "unexpected JWT signing method"
	ErrDevSessionNotFound         = "session not found in redis"
	ErrDevServerDeadlineExceeded  = "request deadline exceeded"
	ErrDevCreateHTTPRequest       = "failed to build outbound HTTP request"
	ErrDevSendHTTPRequest         = "failed to send outbound HTTP request"
	ErrDevDecodeResponse          = "failed to decode response body from %s"
	ErrDevWebpayCreateTransaction = "webpay create transaction failed"
	ErrDevWebpayCommitTransaction = "webpay commit transaction failed"
	ErrDevWebpayRequestTimeout    = "webpay request exceeded the configured timeout"
	ErrDevDBFailedToFindDocument  = "database failed to find document"
	ErrDevDBFailedToInsertDoc     = "database failed to insert document"
	ErrDevDBFailedToUpdateDoc     = "database failed to update document"
	ErrDevDBFailedToIterateDocs   = "database failed to iterate documents"
	ErrDevRedisSet                = "redis failed to set key"
	ErrDevRedisGet                = "redis failed to get key"
	ErrDevRedisDelete             = "redis failed to delete key"
	ErrDevMinioCreateObject       = "minio failed to create object in bucket %s"
	ErrDevMinioPresignObject      = "minio failed to presign object in bucket %s"
	ErrDevQueuePublish            = "failed to publish message to queue"
	ErrDevSMTPSendEmail           = "failed to send email through SMTP host %s"
)
