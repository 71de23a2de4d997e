package session

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errSessionNotFound = errors.New("session not found")

type sessionService struct {
	RedisRepository contracts.RedisRepository
	SealKey         *[32]byte
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, sealSecret string, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		SealKey:         utils.DeriveSealKey(sealSecret),
		Log:             logger,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}

// Create stores the session until its ExpiresAt. The clinic token is sealed
// before it leaves the process.
func (svc *sessionService) Create(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	sealed, err := utils.SealToken(session.ClinicToken, svc.SealKey)
	if err != nil {
		svc.Log.Error("sessionService.Create error sealing clinic token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSealToken(err)
	}
	session.SealedClinicToken = sealed

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrTokenInvalidOrExpired(nil)
	}

	err = svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.Create error calling RedisRepository.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	svc.Log.Info("sessionService.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}

func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)

	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.Get error calling RedisRepository.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(errSessionNotFound)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		svc.Log.Error("sessionService.Get error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidSession(err)
	}

	session.ClinicToken, err = utils.OpenToken(session.SealedClinicToken, svc.SealKey)
	if err != nil {
		svc.Log.Error("sessionService.Get error opening clinic token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidSession(err)
	}

	return session, nil
}

func (svc *sessionService) Destroy(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	err := svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.Destroy error calling RedisRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
