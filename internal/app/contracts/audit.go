package contracts

import (
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AuditRepository interface {
	Insert(ctx context.Context, event *models.AuditEvent) error
	FindRecent(ctx context.Context, limit int64) ([]models.AuditEvent, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditService records mutating actions. Recording never fails the caller.
type AuditService interface {
	Record(ctx context.Context, action, resource, resourceID string, detail map[string]interface{})
	FindRecent(ctx context.Context, limit int) ([]responses.AuditEvent, error)
}
