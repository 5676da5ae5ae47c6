package exceptions

import (
	"errors"
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError renders a single client message. Missing fields
// are always reported before malformed ones, in struct field order.
func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	chosen := validationErrors[0]
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			chosen = fieldErr
			break
		}
	}
	return formatFieldError(chosen)
}

func formatFieldError(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	message, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return fmt.Sprintf("%s is invalid", fieldErr.Field())
	}

	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		return fmt.Sprintf(message, fieldErr.Field(), param)
	}

	if strings.Contains(message, "%s") {
		return fmt.Sprintf(message, fieldErr.Field())
	}
	return message
}
