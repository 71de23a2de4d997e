package exceptions

import (
	"clinic-portal-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if err == nil || !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	firstErr := validationErrors[0]
	message := formatValidationMessage(firstErr)
	if constvars.TagsWithoutFieldName[firstErr.Tag()] {
		return message
	}
	return lowerFirst(firstErr.Field()) + " " + message
}

// CollectValidationErrors groups every failed rule by its JSON field name.
func CollectValidationErrors(err error) map[string][]string {
	var validationErrors validator.ValidationErrors
	if err == nil || !errors.As(err, &validationErrors) {
		return nil
	}
	fieldErrors := make(map[string][]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldName := lowerFirst(fieldErr.Field())
		fieldErrors[fieldName] = append(fieldErrors[fieldName], formatValidationMessage(fieldErr))
	}
	return fieldErrors
}

func formatValidationMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return customMessage
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
