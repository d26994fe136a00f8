package amqp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
	"max.ks1230/daily-expenses/internal/model/notify"
)

const publishTimeout = 5 * time.Second

type config interface {
	URL() string
	Exchange() string
	RoutingKey() string
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends notification events to an AMQP exchange.
type Publisher struct {
	conn       *amqp091.Connection
	channel    channel
	exchange   string
	routingKey string
}

func NewPublisher(config config) (*Publisher, error) {
	conn, err := amqp091.Dial(config.URL())
	if err != nil {
		return nil, errors.Wrap(err, "dial amqp")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "open channel")
	}

	err = ch.ExchangeDeclare(
		config.Exchange(),
		amqp091.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, errors.Wrap(err, "declare exchange")
	}

	p := newPublisher(ch, config.Exchange(), config.RoutingKey())
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange, routingKey string) *Publisher {
	return &Publisher{
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
	}
}

func (p *Publisher) Send(ctx context.Context, event notify.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.At,
		Type:         string(event.Kind),
		Body:         body,
	})
	if err != nil {
		return errors.Wrap(err, "publish event")
	}
	logger.Debug("published event", zap.String("kind", string(event.Kind)), zap.String("exchange", p.exchange))
	return nil
}

func (p *Publisher) Close() {
	if err := p.channel.Close(); err != nil {
		logger.Error("failed to close amqp channel", zap.Error(err))
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			logger.Error("failed to close amqp connection", zap.Error(err))
		}
	}
}
