package contracts

import (
	"clinic-portal-service/internal/pkg/dto/requests"
	"context"
	"io"
	"mime/multipart"
)

type ReferenceUsecase interface {
	List(ctx context.Context, resourceName string, listQuery *requests.ListQuery) ([]map[string]interface{}, int, error)
	Get(ctx context.Context, resourceName string, id int) (map[string]interface{}, error)
	Create(ctx context.Context, resourceName string, body []byte) (map[string]interface{}, error)
	Update(ctx context.Context, resourceName string, id int, body []byte) (map[string]interface{}, error)
	Delete(ctx context.Context, resourceName string, id int) error
	UploadCertificateImage(ctx context.Context, certificateID int, file io.Reader, fileHeader *multipart.FileHeader) (map[string]interface{}, error)
	// Permissions returns the read and manage permissions guarding resourceName.
	Permissions(resourceName string) (read, manage string, ok bool)
}
