package mocks

import (
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/dto/responses"
	"context"
	"io"
	"mime/multipart"
	"sync"

	"github.com/stretchr/testify/mock"
)

type MailerService struct {
	mock.Mock
}

func (m *MailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, fileHeader, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *Storage) ObjectUrl(bucketName, objectName string) string {
	args := m.Called(bucketName, objectName)
	return args.String(0)
}

type TreatmentNotifier struct {
	mock.Mock
}

func (m *TreatmentNotifier) NotifyTreatmentCreated(ctx context.Context, treatment *clinic_dto.Treatment) error {
	args := m.Called(ctx, treatment)
	return args.Error(0)
}

// AuditService keeps recorded actions in memory.
type AuditService struct {
	mu      sync.Mutex
	Actions []string
	Events  []responses.AuditEvent
}

func (m *AuditService) Record(ctx context.Context, action, resource, resourceID string, detail map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Actions = append(m.Actions, action)
}

func (m *AuditService) FindRecent(ctx context.Context, limit int) ([]responses.AuditEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.Events) {
		limit = len(m.Events)
	}
	return m.Events[:limit], nil
}

func (m *AuditService) Recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Actions...)
}

type SessionService struct {
	mock.Mock
}

func (m *SessionService) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*models.Session)
	return result, args.Error(1)
}

func (m *SessionService) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Login)
	return result, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, session *models.Session) (*responses.Logout, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.Logout)
	return result, args.Error(1)
}

func (m *AuthUsecase) CurrentUser(ctx context.Context, session *models.Session) (*responses.CurrentUser, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.CurrentUser)
	return result, args.Error(1)
}

func (m *AuthUsecase) Permissions(ctx context.Context, session *models.Session) (*responses.Permissions, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.Permissions)
	return result, args.Error(1)
}

func (m *AuthUsecase) ResolveSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	args := m.Called(ctx, sessionToken)
	result, _ := args.Get(0).(*models.Session)
	return result, args.Error(1)
}

func (m *AuthUsecase) HandleUnauthorized(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
