package config

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mediconnect"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":5000"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			LoginMaxRequestsPerMinute: utils.GetEnvInt("APP_LOGIN_MAX_REQUESTS_PER_MINUTE", 10),
			LoginBlockTimeInMinutes:   utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_IN_MINUTES", 5),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "change-me"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Booking: Booking{
			MeetingBaseUrl:                  utils.GetEnvString("BOOKING_MEETING_BASE_URL", "https://meet.mediconnect.com"),
			DefaultConsultationFee:          utils.GetEnvFloat("BOOKING_DEFAULT_CONSULTATION_FEE", constvars.DefaultConsultationFee),
			LockTTLInSeconds:                utils.GetEnvInt("BOOKING_LOCK_TTL_IN_SECONDS", 10),
			LockRetries:                     utils.GetEnvInt("BOOKING_LOCK_RETRIES", 5),
			LockRetryIntervalInMilliseconds: utils.GetEnvInt("BOOKING_LOCK_RETRY_INTERVAL_IN_MILLISECONDS", 100),
		},
		Appointment: Appointment{
			SweeperCronSpec:            utils.GetEnvString("APPOINTMENT_SWEEPER_CRON_SPEC", "@every 5m"),
			CompletionGraceInMinutes:   utils.GetEnvInt("APPOINTMENT_COMPLETION_GRACE_IN_MINUTES", 15),
			SweeperLeaderLockInSeconds: utils.GetEnvInt("APPOINTMENT_SWEEPER_LEADER_LOCK_IN_SECONDS", 120),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:                utils.GetEnvBool("RABBITMQ_ENABLED", false),
			AppointmentEventsQueue: utils.GetEnvString("RABBITMQ_APPOINTMENT_EVENTS_QUEUE", "appointment_events"),
		},
	}
}
