package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// AuditWorkerStop is called first during Shutdown when set
	AuditWorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.AuditWorkerStop != nil {
		b.AuditWorkerStop()
		b.Logger.Info("Successfully stopping audit retention worker")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	b.Logger.Info("Successfully closing Redis")

	err = b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	b.Logger.Info("Successfully closing MongoDB")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	b.Logger.Info("Successfully closing RabbitMQ")

	b.Logger.Info("Successfully closing Logger")
	// Sync on stdout returns EINVAL on some platforms; the error is not actionable.
	_ = b.Logger.Sync()

	return nil
}
