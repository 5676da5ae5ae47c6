package requests

// Only presence is checked at decode time; the booking use case validates
// values in a fixed order after resolving the doctor.
type BookAppointment struct {
	DoctorID         string   `json:"doctor_id" validate:"required"`
	AppointmentDate  string   `json:"appointment_date" validate:"required"`
	Duration         *float64 `json:"duration" validate:"required"`
	ConsultationType string   `json:"consultation_type" validate:"required"`
	Symptoms         string   `json:"symptoms,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

type DoctorListFilter struct {
	Specialty string
	Location  string
	Date      string
}

type ListDoctors struct {
	Filter DoctorListFilter
	Page   int
	Limit  int
}
