package clinic_api

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"net/url"

	"github.com/goccy/go-json"
)

type appointmentClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewAppointmentClinicClient(client contracts.ClinicApiClient) contracts.AppointmentClinicClient {
	return &appointmentClinicClient{Client: client}
}

func (c *appointmentClinicClient) FindAll(ctx context.Context, query url.Values) ([]clinic_dto.Appointment, error) {
	appointments := make([]clinic_dto.Appointment, 0)
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourceAppointment, constvars.ActionGetAll, query, nil, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentClinicClient) FindByID(ctx context.Context, appointmentID int) (*clinic_dto.Appointment, error) {
	var appointment *clinic_dto.Appointment
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourceAppointment, byIDAction(constvars.ActionGetByID, appointmentID), nil, nil, &appointment)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrClinicApiNotFound(nil, constvars.ResourceAppointment)
	}
	return appointment, nil
}

func (c *appointmentClinicClient) Create(ctx context.Context, request *clinic_dto.Appointment) (*clinic_dto.Appointment, error) {
	var raw json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.ResourceAppointment, constvars.ActionCreate, nil, request, &raw)
	if err != nil {
		return nil, err
	}

	created := new(clinic_dto.Appointment)
	id, err := decodeCreated(constvars.ResourceAppointment, raw, created)
	if err != nil {
		return nil, err
	}
	if created.ID == 0 {
		*created = *request
		created.ID = id
	}
	return created, nil
}

func (c *appointmentClinicClient) Update(ctx context.Context, request *clinic_dto.Appointment) (*clinic_dto.Appointment, error) {
	updated := new(clinic_dto.Appointment)
	err := c.Client.Do(ctx, constvars.MethodPut, constvars.ResourceAppointment, constvars.ActionUpdate, nil, request, updated)
	if err != nil {
		return nil, err
	}
	if updated.ID == 0 {
		*updated = *request
	}
	return updated, nil
}
