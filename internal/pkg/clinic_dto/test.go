package clinic_dto

type TestType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type TestResult struct {
	ID            int    `json:"id,omitempty"`
	AppointmentID int    `json:"appointmentId"`
	PatientID     int    `json:"patientId"`
	DoctorID      int    `json:"doctorId"`
	TestTypeID    int    `json:"testTypeId"`
	ResultValue   string `json:"resultValue"`
	Notes         string `json:"notes,omitempty"`
	TestDate      string `json:"testDate"`
}
