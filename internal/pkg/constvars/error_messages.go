package constvars

// Validation messages, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":     "missing required field: %s",
	"email_format": "invalid email format",
	"password":     "password must be at least 8 characters with uppercase, lowercase, number, and special character",
	"user_type":    "invalid user type, must be 'patient' or 'doctor'",
	"oneof":        "%s must be one of: %s",
	"min":          "%s must be at least %s",
	"max":          "%s must be at most %s",
	"gte":          "%s must be greater than or equal to %s",
	"lte":          "%s must be less than or equal to %s",
	"date_only":    "%s must use the YYYY-MM-DD format",
}

// Tags whose message embeds the validator parameter
var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "internal server error"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientEndpointNotFound              = "endpoint not found"
	ErrClientMethodNotAllowed              = "method not allowed"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"

	ErrClientEmailAlreadyRegistered  = "email already registered"
	ErrClientEmailPasswordRequired   = "email and password required"
	ErrClientInvalidEmailOrPassword  = "invalid email or password"
	ErrClientAccountDeactivated      = "account is deactivated"
	ErrClientNotAuthorized           = "authorization token required"
	ErrClientNotLoggedIn             = "invalid or expired token"
	ErrClientUserNotFound            = "user not found"
	ErrClientRoleRequiredFormat      = "access denied, %s role required"
	ErrClientInvalidPaginationParam  = "invalid page or limit parameter"
	ErrClientInvalidPaginationValues = "invalid pagination parameters"
	ErrClientInvalidDoctorID         = "invalid doctor id format"
	ErrClientDoctorNotFound          = "doctor not found or inactive"
	ErrClientInvalidAppointmentDate  = "invalid appointment date format, use ISO 8601 (e.g., 2025-07-25T14:00:00Z)"
	ErrClientAppointmentNotInFuture  = "appointment must be scheduled for future date"
	ErrClientInvalidDuration         = "invalid duration, must be 15, 30, 45, or 60 minutes"
	ErrClientInvalidConsultationType = "invalid consultation type"
	ErrClientTimeSlotUnavailable     = "time slot no longer available"
	ErrClientBookingInProgress       = "another booking for this doctor is in progress, please retry"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCannotParseQueryParam  = "cannot parse query param %s"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevAccountDeactivated     = "account is_active flag is false"
	ErrDevEmailAlreadyRegistered = "an account with this email already exists"
	ErrDevUserNotExists          = "user does not exist"
	ErrDevRoleTypeDoesntMatch    = "role type does not match the required role"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevRoutePanicRecovered    = "panic recovered while serving the request"

	ErrDevAuthTokenMissing          = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired = "auth token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthTokenMissingSubject   = "auth token has no subject claim"

	ErrDevDoctorNotFound          = "doctor account missing, not a doctor, or inactive"
	ErrDevInvalidAppointmentDate  = "appointment date is not ISO 8601"
	ErrDevAppointmentNotInFuture  = "appointment start is not after now"
	ErrDevAppointmentOverlap      = "proposed interval overlaps an existing blocking appointment"
	ErrDevAppointmentDuplicateKey = "confirmed appointment unique index rejected insert"
	ErrDevBookingLockNotAcquired  = "booking lock for doctor not acquired"
	ErrDevInvalidPaginationValues = "page < 1 or limit outside [1, 50]"
	ErrDevInvalidDoctorID         = "doctor id is not an object id hex"
	ErrDevInvalidDuration         = "duration not in the allowed set"
	ErrDevInvalidConsultationType = "consultation type not in the allowed set"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToAggregate        = "failed to run aggregation pipeline"
	ErrDevDBFailedToCreateIndexes    = "failed to create indexes"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisExpire     = "failed to set redis key expiration"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)
