package responses

import "time"

type Workflow struct {
	ID            string    `json:"id"`
	Step          string    `json:"step"`
	AppointmentID int       `json:"appointmentId"`
	PatientID     int       `json:"patientId"`
	DoctorID      int       `json:"doctorId"`
	TestTypeID    *int      `json:"testTypeId"`
	TestResultID  *int      `json:"testResultId"`
	RegimenID     *int      `json:"regimenId"`
	RegimenSource string    `json:"regimenSource,omitempty"`
	TreatmentID   *int      `json:"treatmentId"`
	Next          string    `json:"next"`
	Warnings      []string  `json:"warnings,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
