package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
)

const (
	REQUEST_ID_PREFIX = "MDCN_SVC_"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "no_show"
	AppointmentStatusCompleted = "completed"
)

const (
	ConsultationTypeVideo = "video"
	ConsultationTypeAudio = "audio"
	ConsultationTypeChat  = "chat"
)

var (
	AllowedAppointmentDurations = []int{15, 30, 45, 60}
	AllowedConsultationTypes    = []string{ConsultationTypeVideo, ConsultationTypeAudio, ConsultationTypeChat}

	// Appointments in these states never block a time slot.
	NonBlockingAppointmentStatuses = []string{AppointmentStatusCancelled, AppointmentStatusNoShow}
)

const (
	DefaultConsultationFee = 150.0
	InitialDoctorRating    = 5.0

	DoctorListDefaultPage  = 1
	DoctorListDefaultLimit = 10
	DoctorListMaxLimit     = 50
)

const (
	MongoCollectionUsers           = "users"
	MongoCollectionDoctorProfiles  = "doctor_profiles"
	MongoCollectionPatientProfiles = "patient_profiles"
	MongoCollectionAppointments    = "appointments"
)

const (
	RedisKeyBookingDoctorLockFormat = "appointment:doctor:%s:lock"
	RedisKeySweeperLeaderLock       = "appointment:sweeper:leader"
)

const (
	EventAppointmentBooked = "appointment.booked"
)

const (
	MeetingRoomPathFormat = "%s/room/%s"
	DoctorNameFormat      = "Dr. %s %s"
	HealthCheckMessage    = "MediConnect API is running"
)
