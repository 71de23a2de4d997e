package storage

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient   *minio.Client
	PublicBaseUrl string
	Log           *zap.Logger
}

// NewMinioStorage builds object URLs from publicBaseUrl when set, otherwise
// from the client endpoint.
func NewMinioStorage(minioClient *minio.Client, publicBaseUrl string, logger *zap.Logger) contracts.Storage {
	if publicBaseUrl == "" && minioClient != nil {
		publicBaseUrl = minioClient.EndpointURL().String()
	}
	return &minioStorage{
		MinioClient:   minioClient,
		PublicBaseUrl: strings.TrimRight(publicBaseUrl, "/"),
		Log:           logger,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("minioStorage.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadFile error calling MinioClient.PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	objectUrl := m.ObjectUrl(bucketName, objectName)
	m.Log.Info("minioStorage.UploadFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectUrl, nil
}

func (m *minioStorage) ObjectUrl(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", m.PublicBaseUrl, bucketName, objectName)
}
