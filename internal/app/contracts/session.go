package contracts

import (
	"clinic-portal-service/internal/app/models"
	"context"
)

type SessionService interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Destroy(ctx context.Context, sessionID string) error
}
