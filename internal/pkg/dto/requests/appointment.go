package requests

type SearchAvailableDoctors struct {
	Date string `json:"date" validate:"required,clinic_date"`
	Time string `json:"time" validate:"required,clinic_time"`
}

type BookAppointment struct {
	AppointmentDate string `json:"appointmentDate" validate:"required,clinic_date"`
	AppointmentTime string `json:"appointmentTime" validate:"required,clinic_time"`
	DoctorID        int    `json:"doctorId" validate:"required,gt=0"`
	AppointmentType string `json:"appointmentType" validate:"required,appointment_category"`
	TestTypeID      *int   `json:"testTypeId" validate:"omitempty,gt=0"`
	PatientID       int    `json:"patientId" validate:"omitempty,gt=0"`
	Notes           string `json:"notes" validate:"max=1000"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,appointment_status"`
}
