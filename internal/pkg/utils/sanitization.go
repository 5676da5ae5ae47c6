package utils

import (
	"mediconnect-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = SanitizeEmail(input.Email)
	input.UserType = strings.ToLower(strings.TrimSpace(input.UserType))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.MedicalLicense = strings.TrimSpace(input.MedicalLicense)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
}

// Passwords are compared verbatim, only the email is normalised.
func SanitizeLoginRequest(input *requests.Login) {
	input.Email = SanitizeEmail(input.Email)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.ConsultationType = strings.ToLower(strings.TrimSpace(input.ConsultationType))
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeDoctorListFilter(input *requests.DoctorListFilter) {
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Location = strings.TrimSpace(input.Location)
	input.Date = strings.TrimSpace(input.Date)
}
