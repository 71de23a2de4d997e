package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	GetCurrentUserSuccess = "get current user successfully"
	GetPermissionsSuccess = "get permissions successfully"

	// Appointment messages
	SearchAvailableDoctorsSuccess = "get available doctors successfully"
	BookAppointmentSuccess        = "appointment booked successfully"
	GetAppointmentSuccess         = "get appointment successfully"
	UpdateAppointmentSuccess      = "appointment updated successfully"
	CancelAppointmentSuccess      = "appointment cancelled successfully"

	// Workflow messages
	StartWorkflowSuccess       = "workflow started successfully"
	GetWorkflowSuccess         = "get workflow successfully"
	RecordTestResultSuccess    = "test result recorded successfully"
	GetStandardRegimensSuccess = "get standard regimens successfully"
	GetActiveComponentsSuccess = "get active components successfully"
	SelectRegimenSuccess       = "regimen selected successfully"
	CreateTreatmentSuccess     = "treatment created successfully"
	AbandonWorkflowSuccess     = "workflow abandoned successfully"

	// Reference messages
	GetReferenceListSuccess  = "get %s successfully"
	GetReferenceSuccess      = "get %s detail successfully"
	CreateReferenceSuccess   = "%s created successfully"
	UpdateReferenceSuccess   = "%s updated successfully"
	DeleteReferenceSuccess   = "%s deleted successfully"
	UploadCertificateSuccess = "certificate image uploaded successfully"

	// Audit messages
	GetAuditEventsSuccess = "get audit events successfully"
)

// Warnings attached to otherwise successful responses
const (
	WarningAppointmentStatusFailed = "treatment created but the appointment could not be marked as completed"
)
