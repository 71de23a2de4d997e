package contracts

import (
	"clinic-portal-service/internal/pkg/clinic_dto"
	"context"
	"net/url"
)

// ClinicApiClient speaks the clinic REST envelope. out receives the
// envelope data and may be nil.
type ClinicApiClient interface {
	Do(ctx context.Context, method, resource, action string, query url.Values, body interface{}, out interface{}) error
}

type AuthClinicClient interface {
	Login(ctx context.Context, request *clinic_dto.LoginRequest) (*clinic_dto.LoginResult, error)
}

type AppointmentClinicClient interface {
	FindAll(ctx context.Context, query url.Values) ([]clinic_dto.Appointment, error)
	FindByID(ctx context.Context, appointmentID int) (*clinic_dto.Appointment, error)
	Create(ctx context.Context, request *clinic_dto.Appointment) (*clinic_dto.Appointment, error)
	Update(ctx context.Context, request *clinic_dto.Appointment) (*clinic_dto.Appointment, error)
}

type DoctorClinicClient interface {
	FindAvailable(ctx context.Context, date, time string) ([]clinic_dto.Doctor, error)
}

type TestTypeClinicClient interface {
	FindByID(ctx context.Context, testTypeID int) (*clinic_dto.TestType, error)
}

type TestResultClinicClient interface {
	Create(ctx context.Context, request *clinic_dto.TestResult) (*clinic_dto.TestResult, error)
}

type RegimenClinicClient interface {
	FindAll(ctx context.Context) ([]clinic_dto.Regimen, error)
	FindByID(ctx context.Context, regimenID int) (*clinic_dto.Regimen, error)
	Create(ctx context.Context, request *clinic_dto.Regimen) (*clinic_dto.Regimen, error)
}

type ComponentClinicClient interface {
	FindAll(ctx context.Context) ([]clinic_dto.Component, error)
}

type TreatmentClinicClient interface {
	Create(ctx context.Context, request *clinic_dto.Treatment) (*clinic_dto.Treatment, error)
}

type PatientClinicClient interface {
	FindByID(ctx context.Context, patientID int) (*clinic_dto.Patient, error)
}

// RecordClinicClient handles reference data as loosely typed records.
type RecordClinicClient interface {
	FindAll(ctx context.Context, resource string) ([]map[string]interface{}, error)
	FindByID(ctx context.Context, resource string, id int) (map[string]interface{}, error)
	Create(ctx context.Context, resource string, record map[string]interface{}) (map[string]interface{}, error)
	Update(ctx context.Context, resource string, record map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, resource string, id int) error
}
