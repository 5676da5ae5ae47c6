package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	RegisterSuccessMessage        = "registration successful"
	LoginSuccessMessage           = "login successful"
	GetDoctorsSuccessMessage      = "doctors retrieved successfully"
	BookAppointmentSuccessMessage = "appointment booked successfully"

	TokenTypeBearer = "Bearer"
)
