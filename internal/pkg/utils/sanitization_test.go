package utils

import (
	"mediconnect-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email: "  Jane.Doe@EXAMPLE.COM  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "jane.doe@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("User Type Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			UserType: " Doctor ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "doctor", request.UserType, "user type should be lowercase and trimmed")
	})

	t.Run("Password Untouched", func(t *testing.T) {
		request := &requests.RegisterUser{
			Password: " Passw0rd! ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, " Passw0rd! ", request.Password, "password must be kept verbatim")
	})

	t.Run("Names Trimmed", func(t *testing.T) {
		request := &requests.RegisterUser{
			FirstName: "  Sarah ",
			LastName:  " Johnson  ",
			Specialty: " Cardiology ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Sarah", request.FirstName)
		assert.Equal(t, "Johnson", request.LastName)
		assert.Equal(t, "Cardiology", request.Specialty)
	})
}

func TestSanitizeBookAppointmentRequest(t *testing.T) {
	request := &requests.BookAppointment{
		DoctorID:         " 64b7f0c2a1b2c3d4e5f60718 ",
		AppointmentDate:  " 2030-07-25T14:00:00Z ",
		ConsultationType: " Video ",
	}

	SanitizeBookAppointmentRequest(request)

	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", request.DoctorID)
	assert.Equal(t, "2030-07-25T14:00:00Z", request.AppointmentDate)
	assert.Equal(t, "video", request.ConsultationType)
}
