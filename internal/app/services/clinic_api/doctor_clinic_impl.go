package clinic_api

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"context"
	"net/url"
)

type doctorClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewDoctorClinicClient(client contracts.ClinicApiClient) contracts.DoctorClinicClient {
	return &doctorClinicClient{Client: client}
}

// FindAvailable lists doctors free at date (YYYY-MM-DD) and clock (HH:MM:SS).
func (c *doctorClinicClient) FindAvailable(ctx context.Context, date, clock string) ([]clinic_dto.Doctor, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("time", clock)

	doctors := make([]clinic_dto.Doctor, 0)
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourceDoctor, constvars.ActionGetAvailable, query, nil, &doctors)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
