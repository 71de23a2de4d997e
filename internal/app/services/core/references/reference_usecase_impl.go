package references

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errUnknownResource = errors.New("no such reference resource")
	errReadOnly        = errors.New("resource is read only")
	errNotOwner        = errors.New("record belongs to another patient")
)

type referenceUsecase struct {
	RecordClinicClient contracts.RecordClinicClient
	Storage            contracts.Storage
	AuditService       contracts.AuditService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewReferenceUsecase(
	recordClinicClient contracts.RecordClinicClient,
	storage contracts.Storage,
	auditService contracts.AuditService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReferenceUsecase {
	return &referenceUsecase{
		RecordClinicClient: recordClinicClient,
		Storage:            storage,
		AuditService:       auditService,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *referenceUsecase) Permissions(resourceName string) (string, string, bool) {
	resource, ok := lookupResource(resourceName)
	if !ok {
		return "", "", false
	}
	return resource.ReadPermission, resource.ManagePermission, true
}

// List returns one page of the filtered records and the filtered total.
func (uc *referenceUsecase) List(ctx context.Context, resourceName string, listQuery *requests.ListQuery) ([]map[string]interface{}, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("referenceUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
	)

	resource, err := uc.resource(resourceName)
	if err != nil {
		return nil, 0, err
	}

	records, err := uc.RecordClinicClient.FindAll(ctx, resource.Backend)
	if err != nil {
		uc.Log.Error("referenceUsecase.List error calling RecordClinicClient.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	visible := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		if resource.Scope != nil && !resource.Scope(record) {
			continue
		}
		if !ownsRecord(ctx, resource, record) {
			continue
		}
		visible = append(visible, record)
	}

	filtered := utils.FilterRecords(visible, resource.FilterFields, listQuery.Q, listQuery.Active)
	page := utils.Paginate(filtered, listQuery.Page, listQuery.PageSize)

	uc.Log.Info("referenceUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
		zap.Int(constvars.LoggingRecordCountKey, len(filtered)),
	)
	return page, len(filtered), nil
}

func (uc *referenceUsecase) Get(ctx context.Context, resourceName string, id int) (map[string]interface{}, error) {
	resource, err := uc.resource(resourceName)
	if err != nil {
		return nil, err
	}
	return uc.findVisible(ctx, resource, id)
}

func (uc *referenceUsecase) Create(ctx context.Context, resourceName string, body []byte) (map[string]interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("referenceUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
	)

	resource, err := uc.writableResource(resourceName)
	if err != nil {
		return nil, err
	}

	fields, err := decodeRequest(resource, body)
	if err != nil {
		return nil, err
	}

	record := make(map[string]interface{}, len(fields)+len(resource.Defaults)+1)
	for key, value := range fields {
		record[key] = value
	}
	for key, value := range resource.Defaults {
		record[key] = value
	}
	if _, ok := record[constvars.FieldIsActive]; !ok {
		record[constvars.FieldIsActive] = true
	}

	created, err := uc.RecordClinicClient.Create(ctx, resource.Backend, record)
	if err != nil {
		uc.Log.Error("referenceUsecase.Create error calling RecordClinicClient.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	createdID, _ := recordInt(created, constvars.FieldID)
	uc.AuditService.Record(ctx, constvars.AuditActionCreate, resource.Backend, strconv.Itoa(createdID), nil)

	uc.Log.Info("referenceUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
		zap.Int(constvars.LoggingResourceIDKey, createdID),
	)
	return created, nil
}

// Update overlays the validated fields on the stored record so backend
// fields the form does not carry survive the round trip.
func (uc *referenceUsecase) Update(ctx context.Context, resourceName string, id int, body []byte) (map[string]interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("referenceUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
		zap.Int(constvars.LoggingResourceIDKey, id),
	)

	resource, err := uc.writableResource(resourceName)
	if err != nil {
		return nil, err
	}

	fields, err := decodeRequest(resource, body)
	if err != nil {
		return nil, err
	}

	record, err := uc.findVisible(ctx, resource, id)
	if err != nil {
		return nil, err
	}
	for key, value := range fields {
		record[key] = value
	}
	for key, value := range resource.Defaults {
		record[key] = value
	}
	record[constvars.FieldID] = id

	updated, err := uc.RecordClinicClient.Update(ctx, resource.Backend, record)
	if err != nil {
		uc.Log.Error("referenceUsecase.Update error calling RecordClinicClient.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionUpdate, resource.Backend, strconv.Itoa(id), nil)

	uc.Log.Info("referenceUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
		zap.Int(constvars.LoggingResourceIDKey, id),
	)
	return updated, nil
}

// Delete deactivates soft-deletable records through Update and never calls
// the backend Delete for them.
func (uc *referenceUsecase) Delete(ctx context.Context, resourceName string, id int) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("referenceUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
		zap.Int(constvars.LoggingResourceIDKey, id),
	)

	resource, err := uc.writableResource(resourceName)
	if err != nil {
		return err
	}

	if !resource.SoftDelete {
		if resource.Scope != nil {
			_, err = uc.findVisible(ctx, resource, id)
			if err != nil {
				return err
			}
		}
		err = uc.RecordClinicClient.Delete(ctx, resource.Backend, id)
		if err != nil {
			uc.Log.Error("referenceUsecase.Delete error calling RecordClinicClient.Delete",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		uc.AuditService.Record(ctx, constvars.AuditActionHardDelete, resource.Backend, strconv.Itoa(id), nil)
		return nil
	}

	record, err := uc.findVisible(ctx, resource, id)
	if err != nil {
		return err
	}
	record[constvars.FieldID] = id
	record[constvars.FieldIsActive] = false

	_, err = uc.RecordClinicClient.Update(ctx, resource.Backend, record)
	if err != nil {
		uc.Log.Error("referenceUsecase.Delete error calling RecordClinicClient.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionSoftDelete, resource.Backend, strconv.Itoa(id), nil)

	uc.Log.Info("referenceUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
		zap.Int(constvars.LoggingResourceIDKey, id),
	)
	return nil
}

func (uc *referenceUsecase) UploadCertificateImage(ctx context.Context, certificateID int, file io.Reader, fileHeader *multipart.FileHeader) (map[string]interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("referenceUsecase.UploadCertificateImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, certificateID),
	)

	err := utils.ValidateImage(fileHeader, uc.InternalConfig.Minio.CertificateMaxUploadSizeInMB)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	record, err := uc.RecordClinicClient.FindByID(ctx, constvars.ResourceCertificate, certificateID)
	if err != nil {
		uc.Log.Error("referenceUsecase.UploadCertificateImage error calling RecordClinicClient.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectName := fmt.Sprintf(constvars.CertificateImageObjectFormat, certificateID, uuid.NewString(), ext)
	imageUrl, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Minio.BucketName, objectName)
	if err != nil {
		uc.Log.Error("referenceUsecase.UploadCertificateImage error calling Storage.UploadFile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	record[constvars.FieldID] = certificateID
	record[constvars.FieldImageUrl] = imageUrl
	updated, err := uc.RecordClinicClient.Update(ctx, constvars.ResourceCertificate, record)
	if err != nil {
		uc.Log.Error("referenceUsecase.UploadCertificateImage error calling RecordClinicClient.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionUpload, constvars.ResourceCertificate, strconv.Itoa(certificateID), map[string]interface{}{
		"objectName": objectName,
	})

	uc.Log.Info("referenceUsecase.UploadCertificateImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return updated, nil
}

func (uc *referenceUsecase) resource(resourceName string) (referenceResource, error) {
	resource, ok := lookupResource(resourceName)
	if !ok {
		return referenceResource{}, exceptions.ErrUnknownResource(errUnknownResource, resourceName)
	}
	return resource, nil
}

func (uc *referenceUsecase) writableResource(resourceName string) (referenceResource, error) {
	resource, err := uc.resource(resourceName)
	if err != nil {
		return referenceResource{}, err
	}
	if resource.ReadOnly {
		return referenceResource{}, exceptions.ErrResourceReadOnly(errReadOnly, resourceName)
	}
	return resource, nil
}

func (uc *referenceUsecase) findVisible(ctx context.Context, resource referenceResource, id int) (map[string]interface{}, error) {
	record, err := uc.RecordClinicClient.FindByID(ctx, resource.Backend, id)
	if err != nil {
		uc.Log.Error("referenceUsecase.findVisible error calling RecordClinicClient.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClinicResourceKey, resource.Backend),
			zap.Error(err),
		)
		return nil, err
	}
	if !ownsRecord(ctx, resource, record) || (resource.Scope != nil && !resource.Scope(record)) {
		return nil, exceptions.ErrClinicApiNotFound(errNotOwner, resource.Backend)
	}
	return record, nil
}

// decodeRequest validates body against the resource's form and returns the
// form as backend fields.
func decodeRequest(resource referenceResource, body []byte) (map[string]interface{}, error) {
	request := resource.NewRequest()
	err := json.Unmarshal(body, request)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	encoded, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	fields := make(map[string]interface{})
	err = json.Unmarshal(encoded, &fields)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return fields, nil
}

func ownsRecord(ctx context.Context, resource referenceResource, record map[string]interface{}) bool {
	if resource.OwnerField == "" {
		return true
	}
	session, ok := models.SessionFromContext(ctx)
	if !ok || !session.IsPatient() {
		return true
	}
	ownerID, ok := recordInt(record, resource.OwnerField)
	return ok && ownerID == session.User.ID
}

func recordInt(record map[string]interface{}, field string) (int, bool) {
	switch value := record[field].(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	case int64:
		return int(value), true
	case json.Number:
		parsed, err := value.Int64()
		return int(parsed), err == nil
	case string:
		parsed, err := strconv.Atoi(value)
		return parsed, err == nil
	}
	return 0, false
}
