package clinic_api

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
)

type treatmentClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewTreatmentClinicClient(client contracts.ClinicApiClient) contracts.TreatmentClinicClient {
	return &treatmentClinicClient{Client: client}
}

func (c *treatmentClinicClient) Create(ctx context.Context, request *clinic_dto.Treatment) (*clinic_dto.Treatment, error) {
	var raw json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.ResourceTreatment, constvars.ActionCreate, nil, request, &raw)
	if err != nil {
		return nil, err
	}

	created := new(clinic_dto.Treatment)
	id, err := decodeCreated(constvars.ResourceTreatment, raw, created)
	if err != nil {
		return nil, err
	}
	if id > 0 {
		*created = *request
		created.ID = id
	}
	if created.ID == 0 {
		return nil, exceptions.ErrClinicApiDecodeResponse(errMissingCreatedID, constvars.ResourceTreatment)
	}
	return created, nil
}

type patientClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewPatientClinicClient(client contracts.ClinicApiClient) contracts.PatientClinicClient {
	return &patientClinicClient{Client: client}
}

func (c *patientClinicClient) FindByID(ctx context.Context, patientID int) (*clinic_dto.Patient, error) {
	var patient *clinic_dto.Patient
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourcePatient, byIDAction(constvars.ActionGetByID, patientID), nil, nil, &patient)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrClinicApiNotFound(nil, constvars.ResourcePatient)
	}
	return patient, nil
}
