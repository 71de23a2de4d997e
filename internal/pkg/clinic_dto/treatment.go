package clinic_dto

type Treatment struct {
	ID            int    `json:"id,omitempty"`
	TestResultID  int    `json:"testResultId"`
	RegimenID     int    `json:"regimenId"`
	PatientID     int    `json:"patientId"`
	DoctorID      int    `json:"doctorId"`
	AppointmentID int    `json:"appointmentId,omitempty"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

// Patient is read only to keep the notification address at hand.
type Patient struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
