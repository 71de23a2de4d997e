package constvars

// Roles carried by the clinic backend token
const (
	RolePatient = "Patient"
	RoleDoctor  = "Doctor"
	RoleStaff   = "Staff"
	RoleManager = "Manager"
	RoleAdmin   = "Admin"
)

// Claim keys that may carry the role inside the clinic backend token
const (
	ClaimRole             = "role"
	ClaimRoleCapitalized  = "Role"
	ClaimRoleWSFederation = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimExpiration       = "exp"
	ClaimSubject          = "sub"
	ClaimNameIdentifier   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimName             = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimEmail            = "email"
	ClaimUserID           = "userId"
	ClaimUsername         = "username"
	ClaimSessionID        = "session_id"
)

// Clinic backend resources, addressed as /api/{Resource}/{Action}
const (
	ResourceAuth         = "Auth"
	ResourceAppointment  = "Appointment"
	ResourceDoctor       = "Doctor"
	ResourceTestType     = "TestType"
	ResourceTestResult   = "TestResult"
	ResourceRegimen      = "Regimen"
	ResourceComponent    = "Component"
	ResourceTreatment    = "Treatment"
	ResourceCategory     = "Category"
	ResourceArticle      = "Article"
	ResourceCertificate  = "Certificate"
	ResourceStaff        = "Staff"
	ResourceManager      = "Manager"
	ResourceWorkSchedule = "WorkSchedule"
	ResourcePatient      = "Patient"
)

// Clinic backend actions
const (
	ActionGetAll       = "GetAll"
	ActionGetByID      = "GetByID"
	ActionCreate       = "Create"
	ActionUpdate       = "Update"
	ActionDelete       = "Delete"
	ActionLogin        = "Login"
	ActionGetAvailable = "GetAvailable"
)

const (
	ClinicApiPathFormat = "%s/api/%s/%s"
)

const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusConfirmed = "Confirmed"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"

	AppointmentTypeConsultation = "Appointment"
	AppointmentTypeMedication   = "Medication"
)

const (
	RegimenTypeStandard   = "Standard"
	RegimenTypeCustomized = "Customized"

	RegimenModeStandard = "standard"
	RegimenModeCustom   = "custom"
)

const (
	TreatmentStatusInProgress = "InProgress"
)

const (
	WorkflowStepBooking    = "booking"
	WorkflowStepTestResult = "test_result"
	WorkflowStepRegimen    = "regimen"
	WorkflowStepTreatment  = "treatment"
	WorkflowStepCompleted  = "completed"
)

// Reference data screens, addressed as /references/{name}
const (
	ReferenceCategories    = "categories"
	ReferenceArticles      = "articles"
	ReferenceCertificates  = "certificates"
	ReferenceComponents    = "components"
	ReferenceTestTypes     = "test-types"
	ReferenceRegimens      = "regimens"
	ReferenceStaff         = "staff"
	ReferenceDoctors       = "doctors"
	ReferenceManagers      = "managers"
	ReferenceWorkSchedules = "work-schedules"
	ReferencePatients      = "patients"
	ReferenceTestResults   = "test-results"
	ReferenceTreatments    = "treatments"
)

const (
	FieldID          = "id"
	FieldIsActive    = "isActive"
	FieldImageUrl    = "imageUrl"
	FieldPatientID   = "patientId"
	FieldRegimenType = "regimenType"
)

const (
	CertificateImageObjectFormat = "certificates/%d/%s%s"
)

const (
	DateLayout       = "2006-01-02"
	TimeLayoutInput  = "15:04"
	TimeLayoutOutput = "15:04:05"
)

// Permissions evaluated by the route guard
const (
	PermissionAppointmentsBook   = "appointments:book"
	PermissionAppointmentsRead   = "appointments:read"
	PermissionAppointmentsManage = "appointments:manage"
	PermissionDoctorsSearch      = "doctors:search"
	PermissionWorkflowRun        = "workflow:run"
	PermissionRegimensRead       = "regimens:read"
	PermissionRegimensManage     = "regimens:manage"
	PermissionTreatmentsRead     = "treatments:read"
	PermissionTestResultsRead    = "test-results:read"
	PermissionReferencesRead     = "references:read"
	PermissionReferencesManage   = "references:manage"
	PermissionAccountsManage     = "accounts:manage"
	PermissionSchedulesRead      = "schedules:read"
	PermissionSchedulesManage    = "schedules:manage"
)

const (
	AuditActionLogin           = "login"
	AuditActionLogout          = "logout"
	AuditActionCreate          = "create"
	AuditActionUpdate          = "update"
	AuditActionSoftDelete      = "soft_delete"
	AuditActionHardDelete      = "hard_delete"
	AuditActionTreatmentCreate = "treatment_create"
	AuditActionUpload          = "upload"
)

const (
	EmailSubjectTreatmentCreated    = "Your treatment plan is ready"
	EmailReferenceTreatmentFormat   = "treatment:%d"
	EmailTreatmentCreatedHTMLFormat = `<html><body><p>Dear %s,</p><p>Your doctor has prepared a treatment plan for you, running from <strong>%s</strong> to <strong>%s</strong>.</p><p>You can review it in the <a href="%s">patient portal</a>.</p></body></html>`
)
