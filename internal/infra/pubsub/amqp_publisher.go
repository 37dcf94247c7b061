package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultExchange = "portal.events"

// amqpPublisher implements EventPublisher on a RabbitMQ direct exchange.
// The routing key defaults to the event type.
type amqpPublisher struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

// NewAMQPPublisher dials the broker and declares a durable direct exchange.
func NewAMQPPublisher(amqpURL, exchange, routingKey string, logger *slog.Logger) (service.EventPublisher, error) {
	if exchange == "" {
		exchange = defaultExchange
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial amqp broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open amqp channel")
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	return &amqpPublisher{
		conn:       conn,
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event *entity.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	routingKey := p.routingKey
	if routingKey == "" {
		routingKey = event.Type
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: event.RequestID,
		Type:          event.Type,
		Headers:       headers,
		Body:          body,
		Timestamp:     time.Now(),
		DeliveryMode:  amqp.Persistent,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish amqp message")
	}

	p.logger.Info("[AMQP] Event published",
		slog.String("event_type", event.Type),
		slog.String("routing_key", routingKey),
	)

	return nil
}

func (p *amqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		p.conn.Close()

		return errors.WithStack(err)
	}

	return errors.WithStack(p.conn.Close())
}
