package clinic_api

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
)

type regimenClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewRegimenClinicClient(client contracts.ClinicApiClient) contracts.RegimenClinicClient {
	return &regimenClinicClient{Client: client}
}

func (c *regimenClinicClient) FindAll(ctx context.Context) ([]clinic_dto.Regimen, error) {
	regimens := make([]clinic_dto.Regimen, 0)
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourceRegimen, constvars.ActionGetAll, nil, nil, &regimens)
	if err != nil {
		return nil, err
	}
	return regimens, nil
}

func (c *regimenClinicClient) FindByID(ctx context.Context, regimenID int) (*clinic_dto.Regimen, error) {
	var regimen *clinic_dto.Regimen
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourceRegimen, byIDAction(constvars.ActionGetByID, regimenID), nil, nil, &regimen)
	if err != nil {
		return nil, err
	}
	if regimen == nil {
		return nil, exceptions.ErrClinicApiNotFound(nil, constvars.ResourceRegimen)
	}
	return regimen, nil
}

func (c *regimenClinicClient) Create(ctx context.Context, request *clinic_dto.Regimen) (*clinic_dto.Regimen, error) {
	var raw json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.ResourceRegimen, constvars.ActionCreate, nil, request, &raw)
	if err != nil {
		return nil, err
	}

	created := new(clinic_dto.Regimen)
	id, err := decodeCreated(constvars.ResourceRegimen, raw, created)
	if err != nil {
		return nil, err
	}
	if id > 0 {
		*created = *request
		created.ID = id
	}
	if created.ID == 0 {
		return nil, exceptions.ErrClinicApiDecodeResponse(errMissingCreatedID, constvars.ResourceRegimen)
	}
	return created, nil
}

type componentClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewComponentClinicClient(client contracts.ClinicApiClient) contracts.ComponentClinicClient {
	return &componentClinicClient{Client: client}
}

func (c *componentClinicClient) FindAll(ctx context.Context) ([]clinic_dto.Component, error) {
	components := make([]clinic_dto.Component, 0)
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourceComponent, constvars.ActionGetAll, nil, nil, &components)
	if err != nil {
		return nil, err
	}
	return components, nil
}
