package utils

import (
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets every rule", "Passw0rd!", true},
		{"no uppercase, digit or special", "password", false},
		{"too short", "Short1!", false},
		{"no special character", "Passw0rdX", false},
		{"no digit", "Password!", false},
		{"no lowercase", "PASSW0RD!", false},
		{"special outside the allowed set", "Passw0rd#", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("john.smith@example.com"))
	assert.True(t, IsValidEmail("a+b@sub.domain.io"))
	assert.False(t, IsValidEmail("john.smith@example"))
	assert.False(t, IsValidEmail("john smith@example.com"))
	assert.False(t, IsValidEmail("@example.com"))
}

func validRegisterRequest() *requests.RegisterUser {
	return &requests.RegisterUser{
		Email:     "john.smith@example.com",
		Password:  "Passw0rd!",
		UserType:  "patient",
		FirstName: "John",
		LastName:  "Smith",
	}
}

func TestValidateStruct_RegisterUser(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validRegisterRequest()))
	})

	t.Run("first missing field is reported by its json name", func(t *testing.T) {
		request := validRegisterRequest()
		request.UserType = ""
		request.LastName = ""

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "missing required field: user_type", exceptions.FormatFirstValidationError(err))
	})

	t.Run("missing field wins over malformed field", func(t *testing.T) {
		request := validRegisterRequest()
		request.Email = "not-an-email"
		request.FirstName = ""

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "missing required field: first_name", exceptions.FormatFirstValidationError(err))
	})

	t.Run("invalid email format", func(t *testing.T) {
		request := validRegisterRequest()
		request.Email = "john.smith@example"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "invalid email format", exceptions.FormatFirstValidationError(err))
	})

	t.Run("weak password", func(t *testing.T) {
		request := validRegisterRequest()
		request.Password = "password"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Contains(t, exceptions.FormatFirstValidationError(err), "password must be at least 8 characters")
	})

	t.Run("unknown user type", func(t *testing.T) {
		request := validRegisterRequest()
		request.UserType = "nurse"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "invalid user type, must be 'patient' or 'doctor'", exceptions.FormatFirstValidationError(err))
	})

	t.Run("malformed date of birth", func(t *testing.T) {
		request := validRegisterRequest()
		request.DateOfBirth = "15/05/1985"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "date_of_birth must use the YYYY-MM-DD format", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateStruct_BookAppointment(t *testing.T) {
	duration := 0.0
	request := &requests.BookAppointment{
		DoctorID:        "64b7f0c2a1b2c3d4e5f60718",
		AppointmentDate: "2030-07-25T14:00:00Z",
		Duration:        &duration,
	}

	err := ValidateStruct(request)
	require.Error(t, err)
	assert.Equal(t, "missing required field: consultation_type", exceptions.FormatFirstValidationError(err))

	request.ConsultationType = "video"
	assert.NoError(t, ValidateStruct(request), "a zero duration is present, its value is checked later")
}
