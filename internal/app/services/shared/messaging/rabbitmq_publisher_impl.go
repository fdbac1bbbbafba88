package messaging

import (
	"context"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	Channel *amqp091.Channel
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection) (contracts.Publisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel: channel,
	}, nil
}

// Publish declares the queue as durable and sends payload to it as a
// persistent JSON message on the default exchange.
func (p *rabbitMQPublisher) Publish(ctx context.Context, queue string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = p.Channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, queue)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, queue)
	}
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.Channel.Close()
}
