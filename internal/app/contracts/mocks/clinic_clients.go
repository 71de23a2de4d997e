package mocks

import (
	"clinic-portal-service/internal/pkg/clinic_dto"
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type AuthClinicClient struct {
	mock.Mock
}

func (m *AuthClinicClient) Login(ctx context.Context, request *clinic_dto.LoginRequest) (*clinic_dto.LoginResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*clinic_dto.LoginResult)
	return result, args.Error(1)
}

type AppointmentClinicClient struct {
	mock.Mock
}

func (m *AppointmentClinicClient) FindAll(ctx context.Context, query url.Values) ([]clinic_dto.Appointment, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).([]clinic_dto.Appointment)
	return result, args.Error(1)
}

func (m *AppointmentClinicClient) FindByID(ctx context.Context, appointmentID int) (*clinic_dto.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*clinic_dto.Appointment)
	return result, args.Error(1)
}

func (m *AppointmentClinicClient) Create(ctx context.Context, request *clinic_dto.Appointment) (*clinic_dto.Appointment, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*clinic_dto.Appointment)
	return result, args.Error(1)
}

func (m *AppointmentClinicClient) Update(ctx context.Context, request *clinic_dto.Appointment) (*clinic_dto.Appointment, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*clinic_dto.Appointment)
	return result, args.Error(1)
}

type DoctorClinicClient struct {
	mock.Mock
}

func (m *DoctorClinicClient) FindAvailable(ctx context.Context, date, time string) ([]clinic_dto.Doctor, error) {
	args := m.Called(ctx, date, time)
	result, _ := args.Get(0).([]clinic_dto.Doctor)
	return result, args.Error(1)
}

type TestTypeClinicClient struct {
	mock.Mock
}

func (m *TestTypeClinicClient) FindByID(ctx context.Context, testTypeID int) (*clinic_dto.TestType, error) {
	args := m.Called(ctx, testTypeID)
	result, _ := args.Get(0).(*clinic_dto.TestType)
	return result, args.Error(1)
}

type TestResultClinicClient struct {
	mock.Mock
}

func (m *TestResultClinicClient) Create(ctx context.Context, request *clinic_dto.TestResult) (*clinic_dto.TestResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*clinic_dto.TestResult)
	return result, args.Error(1)
}

type RegimenClinicClient struct {
	mock.Mock
}

func (m *RegimenClinicClient) FindAll(ctx context.Context) ([]clinic_dto.Regimen, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]clinic_dto.Regimen)
	return result, args.Error(1)
}

func (m *RegimenClinicClient) FindByID(ctx context.Context, regimenID int) (*clinic_dto.Regimen, error) {
	args := m.Called(ctx, regimenID)
	result, _ := args.Get(0).(*clinic_dto.Regimen)
	return result, args.Error(1)
}

func (m *RegimenClinicClient) Create(ctx context.Context, request *clinic_dto.Regimen) (*clinic_dto.Regimen, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*clinic_dto.Regimen)
	return result, args.Error(1)
}

type ComponentClinicClient struct {
	mock.Mock
}

func (m *ComponentClinicClient) FindAll(ctx context.Context) ([]clinic_dto.Component, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]clinic_dto.Component)
	return result, args.Error(1)
}

type TreatmentClinicClient struct {
	mock.Mock
}

func (m *TreatmentClinicClient) Create(ctx context.Context, request *clinic_dto.Treatment) (*clinic_dto.Treatment, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*clinic_dto.Treatment)
	return result, args.Error(1)
}

type PatientClinicClient struct {
	mock.Mock
}

func (m *PatientClinicClient) FindByID(ctx context.Context, patientID int) (*clinic_dto.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*clinic_dto.Patient)
	return result, args.Error(1)
}

type RecordClinicClient struct {
	mock.Mock
}

func (m *RecordClinicClient) FindAll(ctx context.Context, resource string) ([]map[string]interface{}, error) {
	args := m.Called(ctx, resource)
	result, _ := args.Get(0).([]map[string]interface{})
	return result, args.Error(1)
}

func (m *RecordClinicClient) FindByID(ctx context.Context, resource string, id int) (map[string]interface{}, error) {
	args := m.Called(ctx, resource, id)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *RecordClinicClient) Create(ctx context.Context, resource string, record map[string]interface{}) (map[string]interface{}, error) {
	args := m.Called(ctx, resource, record)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *RecordClinicClient) Update(ctx context.Context, resource string, record map[string]interface{}) (map[string]interface{}, error) {
	args := m.Called(ctx, resource, record)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *RecordClinicClient) Delete(ctx context.Context, resource string, id int) error {
	args := m.Called(ctx, resource, id)
	return args.Error(0)
}
