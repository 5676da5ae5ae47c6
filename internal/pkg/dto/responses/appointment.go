package responses

type DoctorSummary struct {
	ID              string  `json:"id" bson:"id"`
	Name            string  `json:"name" bson:"name"`
	Specialty       string  `json:"specialty" bson:"specialty"`
	Rating          float64 `json:"rating" bson:"rating"`
	ConsultationFee float64 `json:"consultation_fee" bson:"consultation_fee"`
	YearsExperience int     `json:"years_experience" bson:"years_experience"`
	NextAvailable   string  `json:"next_available" bson:"-"`
}

type DoctorList struct {
	Doctors    []DoctorSummary `json:"doctors"`
	Pagination Pagination      `json:"pagination"`
}

type Appointment struct {
	ID               string  `json:"id"`
	DoctorID         string  `json:"doctor_id"`
	PatientID        string  `json:"patient_id"`
	DoctorName       string  `json:"doctor_name"`
	AppointmentDate  string  `json:"appointment_date"`
	EndTime          string  `json:"end_time"`
	Duration         int     `json:"duration"`
	ConsultationType string  `json:"consultation_type"`
	Status           string  `json:"status"`
	ConsultationFee  float64 `json:"consultation_fee"`
	MeetingLink      string  `json:"meeting_link"`
	Symptoms         string  `json:"symptoms,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type BookAppointment struct {
	Appointment Appointment `json:"appointment"`
}
