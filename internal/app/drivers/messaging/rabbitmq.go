package messaging

import (
	"fmt"
	"health-records-service/internal/app/config"
	"net"
	"net/url"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	conn, err := amqp091.Dial(buildRabbitMQURI(driverConfig.RabbitMQ))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	return conn, nil
}

func buildRabbitMQURI(rabbitConfig config.RabbitMQ) string {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(rabbitConfig.Username, rabbitConfig.Password),
		Host:   net.JoinHostPort(rabbitConfig.Host, rabbitConfig.Port),
		Path:   "/",
	}
	return uri.String()
}
