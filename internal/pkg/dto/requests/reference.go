package requests

type Category struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type Article struct {
	Title        string `json:"title" validate:"required,max=200"`
	Content      string `json:"content" validate:"required"`
	CategoryID   int    `json:"categoryId" validate:"required,gt=0"`
	Author       string `json:"author" validate:"max=100"`
	ThumbnailUrl string `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

type Certificate struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"max=500"`
	IssuedBy    string `json:"issuedBy" validate:"required,max=150"`
	IssuedDate  string `json:"issuedDate,omitempty" validate:"omitempty,clinic_date"`
	ImageUrl    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type Component struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	DosageForm  string `json:"dosageForm" validate:"max=50"`
	Strength    string `json:"strength" validate:"max=50"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type TestType struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	NormalRange string `json:"normalRange" validate:"max=100"`
	Unit        string `json:"unit" validate:"max=30"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// Regimen is the standard regimen authored from the manager screens.
type Regimen struct {
	Name         string `json:"name" validate:"required,max=150"`
	Description  string `json:"description" validate:"required,max=1000"`
	ComponentID1 int    `json:"componentId1" validate:"required,gt=0"`
	ComponentID2 *int   `json:"componentId2" validate:"omitempty,gt=0"`
	ComponentID3 *int   `json:"componentId3" validate:"omitempty,gt=0"`
	ComponentID4 *int   `json:"componentId4" validate:"omitempty,gt=0"`
	SideEffects  string `json:"sideEffects" validate:"max=1000"`
	Usage        string `json:"usage" validate:"required,max=500"`
	Frequency    string `json:"frequency" validate:"required,max=150"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

type Account struct {
	FullName    string `json:"fullName" validate:"required,max=150"`
	Username    string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,phone_number"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=8"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type DoctorAccount struct {
	Account
	Specialization string `json:"specialization" validate:"required,max=100"`
	LicenseNumber  string `json:"licenseNumber" validate:"max=50"`
}

type WorkSchedule struct {
	DoctorID  int    `json:"doctorId" validate:"required,gt=0"`
	DayOfWeek string `json:"dayOfWeek" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime" validate:"required,clinic_time"`
	EndTime   string `json:"endTime" validate:"required,clinic_time"`
	IsActive  *bool  `json:"isActive,omitempty"`
}
