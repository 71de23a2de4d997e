package models

import (
	"clinic-portal-service/internal/pkg/constvars"
	"time"
)

// WorkflowDraft is the server side carry-state of the doctor's clinical
// wizard: appointment, test result, regimen, treatment.
type WorkflowDraft struct {
	ID            string    `json:"id"`
	OwnerUserID   int       `json:"owner_user_id"`
	Step          string    `json:"step"`
	AppointmentID int       `json:"appointment_id"`
	PatientID     int       `json:"patient_id"`
	DoctorID      int       `json:"doctor_id"`
	TestTypeID    *int      `json:"test_type_id,omitempty"`
	TestResultID  *int      `json:"test_result_id,omitempty"`
	RegimenID     *int      `json:"regimen_id,omitempty"`
	RegimenSource string    `json:"regimen_source,omitempty"`
	TreatmentID   *int      `json:"treatment_id,omitempty"`
	Warnings      []string  `json:"warnings,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d *WorkflowDraft) IsCompleted() bool {
	return d.Step == constvars.WorkflowStepCompleted
}

// NextRoute is the frontend screen that continues the draft.
func (d *WorkflowDraft) NextRoute() string {
	switch d.Step {
	case constvars.WorkflowStepTestResult:
		return constvars.RouteWorkflowTestResult
	case constvars.WorkflowStepRegimen:
		return constvars.RouteWorkflowRegimen
	case constvars.WorkflowStepTreatment:
		return constvars.RouteWorkflowTreatment
	default:
		return constvars.RouteDoctorAppointments
	}
}

// MissingCarryState names the first identifier the treatment step needs but
// the draft does not have, with the client message and the route to go back to.
func (d *WorkflowDraft) MissingCarryState() (field, clientMessage, backTo string, missing bool) {
	switch {
	case d.AppointmentID <= 0:
		return "appointmentId", constvars.ErrClientWorkflowMissingAppointment, constvars.RouteDoctorAppointments, true
	case d.TestResultID == nil || *d.TestResultID <= 0:
		return "testResultId", constvars.ErrClientWorkflowMissingTestResult, constvars.RouteWorkflowTestResult, true
	case d.RegimenID == nil || *d.RegimenID <= 0:
		return "regimenId", constvars.ErrClientWorkflowMissingRegimen, constvars.RouteWorkflowRegimen, true
	}
	return "", "", "", false
}

func IntPtr(v int) *int {
	return &v
}
