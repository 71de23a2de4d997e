package messaging

import (
	"clinic-portal-service/internal/app/config"
	"fmt"
	"net"
	"net/url"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func NewRabbitMQ(driverConfig *config.DriverConfig, logger *zap.Logger) (*amqp091.Connection, error) {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   net.JoinHostPort(driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/",
	}
	conn, err := amqp091.Dial(uri.String())
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	logger.Info("Connected to RabbitMQ", zap.String("host", driverConfig.RabbitMQ.Host))
	return conn, nil
}

// DeclareQueue makes sure the durable mailer queue exists before the first
// publish.
func DeclareQueue(conn *amqp091.Connection, queueName string) error {
	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer channel.Close()

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queueName, err)
	}
	return nil
}
