package config

type (
	InternalConfig struct {
		App         App
		JWT         JWT
		Booking     Booking
		Appointment Appointment
		RabbitMQ    AppRabbitMQ
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		RequestTimeoutInSeconds   int
		LoginMaxRequestsPerMinute int
		LoginBlockTimeInMinutes   int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Booking struct {
		MeetingBaseUrl                  string
		DefaultConsultationFee          float64
		LockTTLInSeconds                int
		LockRetries                     int
		LockRetryIntervalInMilliseconds int
	}

	Appointment struct {
		SweeperCronSpec            string
		CompletionGraceInMinutes   int
		SweeperLeaderLockInSeconds int
	}

	AppRabbitMQ struct {
		Enabled                bool
		AppointmentEventsQueue string
	}

	MongoDB struct {
		URI      string
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
)
