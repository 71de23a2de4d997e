package utils

import (
	"clinic-portal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.AppointmentType = strings.TrimSpace(input.AppointmentType)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeSelectRegimenRequest(input *requests.SelectRegimen) {
	input.Mode = strings.ToLower(strings.TrimSpace(input.Mode))
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.SideEffects = strings.TrimSpace(input.SideEffects)
	input.Usage = strings.TrimSpace(input.Usage)
	input.Frequency = strings.TrimSpace(input.Frequency)
}

func SanitizeCreateTreatmentRequest(input *requests.CreateTreatment) {
	input.StartDate = strings.TrimSpace(input.StartDate)
	input.EndDate = strings.TrimSpace(input.EndDate)
	input.Notes = strings.TrimSpace(input.Notes)
}
