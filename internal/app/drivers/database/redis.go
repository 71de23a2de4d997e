package database

import (
	"clinic-portal-service/internal/app/config"
	"context"
	"fmt"
	"net"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects and pings once so a bad address fails at startup
// instead of on the first login.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, logger *zap.Logger) (*redis.Client, error) {
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	addr := net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	logger.Info("Connected to Redis", zap.String("address", addr), zap.Int("db", driverConfig.Redis.DB))
	return client, nil
}
