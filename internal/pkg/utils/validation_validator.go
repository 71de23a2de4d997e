package utils

import (
	"clinic-portal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate          *validator.Validate
	phoneNumberRegexp = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("clinic_date", validateClinicDate)
	validate.RegisterValidation("clinic_time", validateClinicTime)
	validate.RegisterValidation("clinic_role", validateClinicRole)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("appointment_status", validateAppointmentStatus)
	validate.RegisterValidation("appointment_category", validateAppointmentCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateClinicDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateClinicTime(fl validator.FieldLevel) bool {
	_, err := NormalizeClinicTime(fl.Field().String())
	return err == nil
}

func validateClinicRole(fl validator.FieldLevel) bool {
	return NormalizeRole(fl.Field().String()) != ""
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegexp.MatchString(fl.Field().String())
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.AppointmentStatusPending,
		constvars.AppointmentStatusConfirmed,
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled:
		return true
	}
	return false
}

func validateAppointmentCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AppointmentTypeConsultation || value == constvars.AppointmentTypeMedication
}
