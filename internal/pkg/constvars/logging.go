package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingUserIDKey       = "user_id"
	LoggingEmailKey        = "email"
	LoggingRoleKey         = "role"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingAppointmentKey  = "appointment_id"
	LoggingPageKey         = "page"
	LoggingLimitKey        = "limit"
	LoggingTotalKey        = "total"
	LoggingCountKey        = "count"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingLockStoredKey   = "lock_stored_value"
	LoggingLockExpectedKey = "lock_expected_value"
	LoggingLockTTLKey      = "lock_ttl"
	LoggingAttemptKey      = "attempt"
	LoggingCronSpecKey     = "cron_spec"
)
