package references

import (
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"strings"
)

// referenceResource describes how one management screen maps onto the
// clinic backend.
type referenceResource struct {
	Backend      string
	FilterFields []string
	NewRequest   func() interface{}
	SoftDelete   bool
	ReadOnly     bool
	// OwnerField scopes patient sessions to their own records.
	OwnerField       string
	ReadPermission   string
	ManagePermission string
	Defaults         map[string]interface{}
	// Scope, when set, hides backend records that do not belong to the screen.
	Scope func(record map[string]interface{}) bool
}

var referenceResources = map[string]referenceResource{
	constvars.ReferenceCategories: {
		Backend:          constvars.ResourceCategory,
		FilterFields:     []string{"name", "description"},
		NewRequest:       func() interface{} { return new(requests.Category) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionReferencesRead,
		ManagePermission: constvars.PermissionReferencesManage,
	},
	constvars.ReferenceArticles: {
		Backend:          constvars.ResourceArticle,
		FilterFields:     []string{"title", "author", "content"},
		NewRequest:       func() interface{} { return new(requests.Article) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionReferencesRead,
		ManagePermission: constvars.PermissionReferencesManage,
	},
	constvars.ReferenceCertificates: {
		Backend:          constvars.ResourceCertificate,
		FilterFields:     []string{"name", "issuedBy", "description"},
		NewRequest:       func() interface{} { return new(requests.Certificate) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionReferencesRead,
		ManagePermission: constvars.PermissionReferencesManage,
	},
	constvars.ReferenceComponents: {
		Backend:          constvars.ResourceComponent,
		FilterFields:     []string{"name", "description", "dosageForm", "strength"},
		NewRequest:       func() interface{} { return new(requests.Component) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionRegimensRead,
		ManagePermission: constvars.PermissionRegimensManage,
	},
	constvars.ReferenceTestTypes: {
		Backend:          constvars.ResourceTestType,
		FilterFields:     []string{"name", "description", "unit"},
		NewRequest:       func() interface{} { return new(requests.TestType) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionReferencesRead,
		ManagePermission: constvars.PermissionReferencesManage,
	},
	constvars.ReferenceRegimens: {
		Backend:          constvars.ResourceRegimen,
		FilterFields:     []string{"name", "description", "usage", "frequency"},
		NewRequest:       func() interface{} { return new(requests.Regimen) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionRegimensRead,
		ManagePermission: constvars.PermissionRegimensManage,
		Defaults:         map[string]interface{}{constvars.FieldRegimenType: constvars.RegimenTypeStandard},
		Scope:            isStandardRegimen,
	},
	constvars.ReferenceStaff: {
		Backend:          constvars.ResourceStaff,
		FilterFields:     []string{"fullName", "username", "email", "phoneNumber"},
		NewRequest:       func() interface{} { return new(requests.Account) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionAccountsManage,
		ManagePermission: constvars.PermissionAccountsManage,
	},
	constvars.ReferenceDoctors: {
		Backend:          constvars.ResourceDoctor,
		FilterFields:     []string{"fullName", "username", "email", "specialization"},
		NewRequest:       func() interface{} { return new(requests.DoctorAccount) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionAccountsManage,
		ManagePermission: constvars.PermissionAccountsManage,
	},
	constvars.ReferenceManagers: {
		Backend:          constvars.ResourceManager,
		FilterFields:     []string{"fullName", "username", "email"},
		NewRequest:       func() interface{} { return new(requests.Account) },
		SoftDelete:       true,
		ReadPermission:   constvars.PermissionAccountsManage,
		ManagePermission: constvars.PermissionAccountsManage,
	},
	constvars.ReferenceWorkSchedules: {
		Backend:          constvars.ResourceWorkSchedule,
		FilterFields:     []string{"dayOfWeek", "doctorName"},
		NewRequest:       func() interface{} { return new(requests.WorkSchedule) },
		ReadPermission:   constvars.PermissionSchedulesRead,
		ManagePermission: constvars.PermissionSchedulesManage,
	},
	constvars.ReferencePatients: {
		Backend:        constvars.ResourcePatient,
		FilterFields:   []string{"fullName", "email", "phoneNumber"},
		ReadOnly:       true,
		ReadPermission: constvars.PermissionAppointmentsManage,
	},
	constvars.ReferenceTestResults: {
		Backend:        constvars.ResourceTestResult,
		FilterFields:   []string{"resultValue", "notes", "testTypeName", "patientName"},
		ReadOnly:       true,
		OwnerField:     constvars.FieldPatientID,
		ReadPermission: constvars.PermissionTestResultsRead,
	},
	constvars.ReferenceTreatments: {
		Backend:        constvars.ResourceTreatment,
		FilterFields:   []string{"status", "notes", "regimenName", "patientName"},
		ReadOnly:       true,
		OwnerField:     constvars.FieldPatientID,
		ReadPermission: constvars.PermissionTreatmentsRead,
	},
}

func lookupResource(name string) (referenceResource, bool) {
	resource, ok := referenceResources[name]
	return resource, ok
}

func isStandardRegimen(record map[string]interface{}) bool {
	regimenType, _ := record[constvars.FieldRegimenType].(string)
	return regimenType == "" || strings.EqualFold(regimenType, constvars.RegimenTypeStandard)
}
