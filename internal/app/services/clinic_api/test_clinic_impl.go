package clinic_api

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
)

type testTypeClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewTestTypeClinicClient(client contracts.ClinicApiClient) contracts.TestTypeClinicClient {
	return &testTypeClinicClient{Client: client}
}

func (c *testTypeClinicClient) FindByID(ctx context.Context, testTypeID int) (*clinic_dto.TestType, error) {
	var testType *clinic_dto.TestType
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.ResourceTestType, byIDAction(constvars.ActionGetByID, testTypeID), nil, nil, &testType)
	if err != nil {
		return nil, err
	}
	if testType == nil {
		return nil, exceptions.ErrClinicApiNotFound(nil, constvars.ResourceTestType)
	}
	return testType, nil
}

type testResultClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewTestResultClinicClient(client contracts.ClinicApiClient) contracts.TestResultClinicClient {
	return &testResultClinicClient{Client: client}
}

func (c *testResultClinicClient) Create(ctx context.Context, request *clinic_dto.TestResult) (*clinic_dto.TestResult, error) {
	var raw json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.ResourceTestResult, constvars.ActionCreate, nil, request, &raw)
	if err != nil {
		return nil, err
	}

	created := new(clinic_dto.TestResult)
	id, err := decodeCreated(constvars.ResourceTestResult, raw, created)
	if err != nil {
		return nil, err
	}
	if id > 0 {
		*created = *request
		created.ID = id
	}
	if created.ID == 0 {
		return nil, exceptions.ErrClinicApiDecodeResponse(errMissingCreatedID, constvars.ResourceTestResult)
	}
	return created, nil
}
