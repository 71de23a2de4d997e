package locker

import (
	"clinic-portal-service/internal/app/contracts/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("second holder is refused until release", func(t *testing.T) {
		redis := mocks.NewRedisRepository()
		locker := NewLockService(redis, zap.NewNop())

		acquired, value, err := locker.TryLock(ctx, "workflow:wf-1:lock", 30*time.Second)
		require.NoError(t, err)
		require.True(t, acquired)
		assert.NotEmpty(t, value)

		acquired, _, err = locker.TryLock(ctx, "workflow:wf-1:lock", 30*time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)

		require.NoError(t, locker.Unlock(ctx, "workflow:wf-1:lock", value))
		assert.False(t, redis.Has("workflow:wf-1:lock"))

		acquired, _, err = locker.TryLock(ctx, "workflow:wf-1:lock", 30*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("foreign value cannot release", func(t *testing.T) {
		redis := mocks.NewRedisRepository()
		locker := NewLockService(redis, zap.NewNop())

		acquired, _, err := locker.TryLock(ctx, "workflow:wf-2:lock", 30*time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		err = locker.Unlock(ctx, "workflow:wf-2:lock", "someone-else")
		assert.Error(t, err)
		assert.True(t, redis.Has("workflow:wf-2:lock"))
	})

	t.Run("expired lock unlocks quietly", func(t *testing.T) {
		locker := NewLockService(mocks.NewRedisRepository(), zap.NewNop())
		assert.NoError(t, locker.Unlock(ctx, "workflow:gone:lock", "value"))
	})

	t.Run("redis failure", func(t *testing.T) {
		redis := mocks.NewRedisRepository()
		redis.Err = errors.New("connection refused")
		locker := NewLockService(redis, zap.NewNop())

		acquired, _, err := locker.TryLock(ctx, "workflow:wf-3:lock", time.Second)
		assert.Error(t, err)
		assert.False(t, acquired)
	})
}
