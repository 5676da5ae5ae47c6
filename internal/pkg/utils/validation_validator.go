package utils

import (
	"mediconnect-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	emailRegex       = regexp.MustCompile(constvars.RegexEmail)
	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	lowercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	digitRegex       = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	dateOnlyRegex    = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("email_format", validateEmailFormat)
	validate.RegisterValidation("user_type", validateUserType)
	validate.RegisterValidation("date_only", validateDateOnly)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Field names are reported as the client spelled them.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func IsValidPassword(password string) bool {
	return len(password) >= 8 &&
		uppercaseRegex.MatchString(password) &&
		lowercaseRegex.MatchString(password) &&
		digitRegex.MatchString(password) &&
		specialCharRegex.MatchString(password)
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validatePassword(fl validator.FieldLevel) bool {
	return IsValidPassword(fl.Field().String())
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor
}

func validateDateOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateOnlyRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}
