package requests

type StartWorkflow struct {
	AppointmentID int `json:"appointmentId" validate:"required,gt=0"`
}

type RecordTestResult struct {
	ResultValue string `json:"resultValue" validate:"required,max=255"`
	Notes       string `json:"notes" validate:"max=1000"`
	TestTypeID  *int   `json:"testTypeId" validate:"omitempty,gt=0"`
}

// SelectRegimen covers both branches of the regimen step: picking a
// standard regimen by id, or authoring a customized one from components.
type SelectRegimen struct {
	Mode         string `json:"mode" validate:"required,oneof=standard custom"`
	RegimenID    int    `json:"regimenId" validate:"required_if=Mode standard,omitempty,gt=0"`
	ComponentIDs []int  `json:"componentIds" validate:"required_if=Mode custom,max=4,unique,dive,gt=0"`
	Name         string `json:"name" validate:"max=150"`
	Description  string `json:"description" validate:"required_if=Mode custom,max=1000"`
	SideEffects  string `json:"sideEffects" validate:"required_if=Mode custom,max=1000"`
	Usage        string `json:"usage" validate:"required_if=Mode custom,max=500"`
	Frequency    string `json:"frequency" validate:"required_if=Mode custom,max=150"`
}

type CreateTreatment struct {
	StartDate string `json:"startDate" validate:"required,clinic_date"`
	EndDate   string `json:"endDate" validate:"required,clinic_date"`
	Notes     string `json:"notes" validate:"max=1000"`
}
