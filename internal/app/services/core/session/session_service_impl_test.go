package session

import (
	"clinic-portal-service/internal/app/contracts/mocks"
	"clinic-portal-service/internal/app/models"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionService(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the clinic token sealed and opens it again", func(t *testing.T) {
		repo := mocks.NewRedisRepository()
		svc := NewSessionService(repo, "seal-secret", zap.NewNop())

		err := svc.Create(ctx, &models.Session{
			SessionID:   "abc",
			Role:        "Doctor",
			ClinicToken: "clinic.jwt.token",
			User:        models.UserProfile{ID: 4, Username: "dr.who"},
			ExpiresAt:   time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		raw := repo.Raw("session:abc")
		assert.NotEmpty(t, raw)
		assert.False(t, strings.Contains(raw, "clinic.jwt.token"))

		ttl, _ := repo.TTL(ctx, "session:abc")
		assert.Greater(t, ttl, 59*time.Minute)

		session, err := svc.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "clinic.jwt.token", session.ClinicToken)
		assert.Equal(t, "Doctor", session.Role)
		assert.Equal(t, 4, session.User.ID)
	})

	t.Run("missing session is unauthorized", func(t *testing.T) {
		svc := NewSessionService(mocks.NewRedisRepository(), "seal-secret", zap.NewNop())

		_, err := svc.Get(ctx, "nope")
		assert.Error(t, err)
	})

	t.Run("a different seal secret cannot open the token", func(t *testing.T) {
		repo := mocks.NewRedisRepository()
		writer := NewSessionService(repo, "first", zap.NewNop())
		reader := NewSessionService(repo, "second", zap.NewNop())

		require.NoError(t, writer.Create(ctx, &models.Session{
			SessionID:   "abc",
			ClinicToken: "clinic.jwt.token",
			ExpiresAt:   time.Now().Add(time.Hour),
		}))

		_, err := reader.Get(ctx, "abc")
		assert.Error(t, err)
	})

	t.Run("destroy removes the session", func(t *testing.T) {
		repo := mocks.NewRedisRepository()
		svc := NewSessionService(repo, "seal-secret", zap.NewNop())
		require.NoError(t, svc.Create(ctx, &models.Session{
			SessionID:   "abc",
			ClinicToken: "t",
			ExpiresAt:   time.Now().Add(time.Hour),
		}))

		require.NoError(t, svc.Destroy(ctx, "abc"))
		assert.False(t, repo.Has("session:abc"))
	})

	t.Run("redis failures surface", func(t *testing.T) {
		repo := mocks.NewRedisRepository()
		repo.Err = errors.New("connection refused")
		svc := NewSessionService(repo, "seal-secret", zap.NewNop())

		err := svc.Create(ctx, &models.Session{SessionID: "abc", ClinicToken: "t", ExpiresAt: time.Now().Add(time.Hour)})
		assert.Error(t, err)
	})
}
