package clinic_api

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

type authClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewAuthClinicClient(client contracts.ClinicApiClient) contracts.AuthClinicClient {
	return &authClinicClient{Client: client}
}

// Login accepts both {"token": "...", "user": {...}} and a bare token string
// as the envelope data.
func (c *authClinicClient) Login(ctx context.Context, request *clinic_dto.LoginRequest) (*clinic_dto.LoginResult, error) {
	var raw json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.ResourceAuth, constvars.ActionLogin, nil, request, &raw)
	if err != nil {
		return nil, err
	}

	result := new(clinic_dto.LoginResult)
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		err = json.Unmarshal(raw, &result.Token)
	} else if trimmed != "" {
		err = json.Unmarshal(raw, result)
	}
	if err != nil {
		return nil, exceptions.ErrClinicApiDecodeResponse(err, constvars.ResourceAuth)
	}

	if result.Token == "" {
		return nil, exceptions.ErrClinicApiDecodeResponse(errors.New("login response carries no token"), constvars.ResourceAuth)
	}
	return result, nil
}
