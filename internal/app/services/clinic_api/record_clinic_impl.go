package clinic_api

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var errMissingCreatedID = errors.New("created record has no id")

func byIDAction(action string, id int) string {
	return fmt.Sprintf("%s/%d", action, id)
}

// decodeCreated fills out from the data of a Create answer. Some backend
// actions answer with the bare new id instead of the record; then only the
// id is returned.
func decodeCreated(resource string, raw json.RawMessage, out interface{}) (int, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, nil
	}
	if id, err := strconv.Atoi(trimmed); err == nil {
		return id, nil
	}
	err := json.Unmarshal(raw, out)
	if err != nil {
		return 0, exceptions.ErrClinicApiDecodeResponse(err, resource)
	}
	return 0, nil
}

type recordClinicClient struct {
	Client contracts.ClinicApiClient
}

func NewRecordClinicClient(client contracts.ClinicApiClient) contracts.RecordClinicClient {
	return &recordClinicClient{Client: client}
}

func (c *recordClinicClient) FindAll(ctx context.Context, resource string) ([]map[string]interface{}, error) {
	records := make([]map[string]interface{}, 0)
	err := c.Client.Do(ctx, constvars.MethodGet, resource, constvars.ActionGetAll, nil, nil, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *recordClinicClient) FindByID(ctx context.Context, resource string, id int) (map[string]interface{}, error) {
	var record map[string]interface{}
	err := c.Client.Do(ctx, constvars.MethodGet, resource, byIDAction(constvars.ActionGetByID, id), nil, nil, &record)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrClinicApiNotFound(nil, resource)
	}
	return record, nil
}

// Create returns the stored record, or the submitted one when the backend
// answers without data.
func (c *recordClinicClient) Create(ctx context.Context, resource string, record map[string]interface{}) (map[string]interface{}, error) {
	var raw json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, resource, constvars.ActionCreate, nil, record, &raw)
	if err != nil {
		return nil, err
	}

	var created map[string]interface{}
	id, err := decodeCreated(resource, raw, &created)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = record
		if id > 0 {
			created["id"] = id
		}
	}
	return created, nil
}

func (c *recordClinicClient) Update(ctx context.Context, resource string, record map[string]interface{}) (map[string]interface{}, error) {
	var updated map[string]interface{}
	err := c.Client.Do(ctx, constvars.MethodPut, resource, constvars.ActionUpdate, nil, record, &updated)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = record
	}
	return updated, nil
}

func (c *recordClinicClient) Delete(ctx context.Context, resource string, id int) error {
	return c.Client.Do(ctx, constvars.MethodDelete, resource, byIDAction(constvars.ActionDelete, id), nil, nil, nil)
}
