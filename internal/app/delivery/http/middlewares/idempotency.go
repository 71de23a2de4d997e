package middlewares

import (
	"bytes"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errIdempotencyInFlight = errors.New("idempotency key in flight")

type capturingRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rec *capturingRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *capturingRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a finished request that
// carried the same Idempotency-Key for the same session. A second request
// arriving while the first is still running gets 409. Only 2xx responses
// are stored, so a failed submission can be retried with the same key.
func (m *Middlewares) Idempotency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(constvars.HeaderIdempotencyKey)
		session, ok := models.SessionFromContext(r.Context())
		if key == "" || !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)
		replayKey := fmt.Sprintf(constvars.RedisKeyIdempotencyFormat, session.SessionID, key)

		if m.replay(ctx, w, replayKey) {
			return
		}

		lockKey := fmt.Sprintf(constvars.RedisKeyIdempotencyLockFormat, session.SessionID, key)
		lockExpiration := time.Duration(m.InternalConfig.Idempotency.LockExpiredTimeInSeconds) * time.Second
		acquired, lockValue, err := m.LockService.TryLock(ctx, lockKey, lockExpiration)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !acquired {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrIdempotencyInFlight(errIdempotencyInFlight, key))
			return
		}
		defer func() {
			unlockErr := m.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
			if unlockErr != nil {
				m.Log.Error("Middlewares.Idempotency error calling LockService.Unlock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(unlockErr),
				)
			}
		}()

		// the first request may have finished while this one waited
		if m.replay(ctx, w, replayKey) {
			return
		}

		rec := &capturingRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.statusCode < http.StatusOK || rec.statusCode >= http.StatusMultipleChoices {
			return
		}

		stored := &models.IdempotentResponse{
			StatusCode:  rec.statusCode,
			ContentType: rec.Header().Get(constvars.HeaderContentType),
			Body:        rec.body.Bytes(),
		}
		expiration := time.Duration(m.InternalConfig.Idempotency.ReplayExpiredTimeInHours) * time.Hour
		err = m.RedisRepository.Set(context.WithoutCancel(ctx), replayKey, stored, expiration)
		if err != nil {
			m.Log.Error("Middlewares.Idempotency error calling RedisRepository.Set",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIdempotencyKey, key),
				zap.Error(err),
			)
		}
	})
}

func (m *Middlewares) replay(ctx context.Context, w http.ResponseWriter, replayKey string) bool {
	raw, err := m.RedisRepository.Get(ctx, replayKey)
	if err != nil || raw == "" {
		return false
	}

	var stored models.IdempotentResponse
	err = json.Unmarshal([]byte(raw), &stored)
	if err != nil {
		m.Log.Error("Middlewares.replay error unmarshalling stored response",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return false
	}

	m.Log.Info("Middlewares.replay serving stored response",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, replayKey),
	)
	if stored.ContentType != "" {
		w.Header().Set(constvars.HeaderContentType, stored.ContentType)
	}
	w.Header().Set(constvars.HeaderIdempotentHit, "true")
	w.WriteHeader(stored.StatusCode)
	w.Write(stored.Body)
	return true
}
