package database

import (
	"clinic-portal-service/internal/app/config"
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

func mongoURI(mongoConfig config.MongoDB) string {
	uri := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(mongoConfig.Host, mongoConfig.Port),
	}
	if mongoConfig.Username != "" {
		uri.User = url.UserPassword(mongoConfig.Username, mongoConfig.Password)
	}
	return uri.String()
}

func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig, logger *zap.Logger) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURI(driverConfig.MongoDB)).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("host", driverConfig.MongoDB.Host))
	return client, nil
}
