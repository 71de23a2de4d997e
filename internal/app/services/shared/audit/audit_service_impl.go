package audit

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/responses"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const auditWriteTimeout = 3 * time.Second

type auditService struct {
	AuditRepository contracts.AuditRepository
	MaxLimit        int
	Log             *zap.Logger
}

func NewAuditService(auditRepository contracts.AuditRepository, maxLimit int, logger *zap.Logger) contracts.AuditService {
	return &auditService{
		AuditRepository: auditRepository,
		MaxLimit:        maxLimit,
		Log:             logger,
	}
}

// Record stores who did what. The acting user comes from the session in ctx,
// falling back to detail["userId"] for login where no session exists yet.
func (s *auditService) Record(ctx context.Context, action, resource, resourceID string, detail map[string]interface{}) {
	requestID := utils.GetRequestID(ctx)

	event := &models.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		RequestID:  requestID,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if session, ok := models.SessionFromContext(ctx); ok {
		event.UserID = session.User.ID
		event.Role = session.Role
	} else if detail != nil {
		if userID, ok := detail["userId"].(int); ok {
			event.UserID = userID
		}
		if role, ok := detail["role"].(string); ok {
			event.Role = role
		}
	}

	// the write outlives a cancelled request context
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	err := s.AuditRepository.Insert(writeCtx, event)
	if err != nil {
		s.Log.Error("auditService.Record error calling AuditRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAuditActionKey, action),
			zap.Error(err),
		)
		return
	}

	s.Log.Info("auditService.Record succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAuditActionKey, action),
		zap.String(constvars.LoggingClinicResourceKey, resource),
	)
}

func (s *auditService) FindRecent(ctx context.Context, limit int) ([]responses.AuditEvent, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("auditService.FindRecent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if limit <= 0 || limit > s.MaxLimit {
		limit = s.MaxLimit
	}

	events, err := s.AuditRepository.FindRecent(ctx, int64(limit))
	if err != nil {
		s.Log.Error("auditService.FindRecent error calling AuditRepository.FindRecent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.AuditEvent, 0, len(events))
	for _, event := range events {
		response = append(response, responses.AuditEvent{
			ID:         event.ID,
			Action:     event.Action,
			Resource:   event.Resource,
			ResourceID: event.ResourceID,
			UserID:     event.UserID,
			Role:       event.Role,
			RequestID:  event.RequestID,
			Detail:     event.Detail,
			CreatedAt:  event.CreatedAt,
		})
	}

	s.Log.Info("auditService.FindRecent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(response)),
	)
	return response, nil
}
