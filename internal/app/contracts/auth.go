package contracts

import (
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) (*responses.Logout, error)
	CurrentUser(ctx context.Context, session *models.Session) (*responses.CurrentUser, error)
	Permissions(ctx context.Context, session *models.Session) (*responses.Permissions, error)
	// ResolveSession turns a session token into a live session, clearing it
	// when the stored clinic token has expired.
	ResolveSession(ctx context.Context, sessionToken string) (*models.Session, error)
	HandleUnauthorized(ctx context.Context, sessionID string) error
}

type PermissionService interface {
	Allowed(role string) []string
	Has(role, permission string) bool
}
