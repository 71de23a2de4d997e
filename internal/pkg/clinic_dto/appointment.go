package clinic_dto

// Appointment mirrors the clinic API appointment record. TestTypeID has no
// omitempty because the backend expects an explicit null for consultations.
type Appointment struct {
	ID              int    `json:"id,omitempty"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	DoctorID        int    `json:"doctorId"`
	PatientID       int    `json:"patientId,omitempty"`
	TestTypeID      *int   `json:"testTypeId"`
	Status          string `json:"status"`
	AppointmentType string `json:"appointmentType,omitempty"`
	Notes           string `json:"notes,omitempty"`
	DoctorName      string `json:"doctorName,omitempty"`
	PatientName     string `json:"patientName,omitempty"`
}

type Doctor struct {
	ID             int    `json:"id"`
	FullName       string `json:"fullName"`
	Specialization string `json:"specialization,omitempty"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	IsActive       bool   `json:"isActive"`
}
