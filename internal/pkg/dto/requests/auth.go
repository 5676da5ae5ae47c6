package requests

// Field order drives which missing field gets reported first.
type RegisterUser struct {
	Email     string `json:"email" validate:"required,email_format"`
	Password  string `json:"password" validate:"required,password"`
	UserType  string `json:"user_type" validate:"required,user_type"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone,omitempty"`

	// Doctor profile
	MedicalLicense  string   `json:"medical_license,omitempty"`
	Specialty       string   `json:"specialty,omitempty"`
	ConsultationFee *float64 `json:"consultation_fee,omitempty" validate:"omitempty,gte=0"`
	YearsExperience int      `json:"years_experience,omitempty" validate:"gte=0"`
	Bio             string   `json:"bio,omitempty"`

	// Patient profile
	DateOfBirth    string `json:"date_of_birth,omitempty" validate:"omitempty,date_only"`
	MedicalHistory string `json:"medical_history,omitempty"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
