// Package rabbitmq publica los eventos del ciclo de vida en un exchange topic.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"vet-clinic-records/internal/platform/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "vetclinic.events"
	ExchangeType = "topic"
)

type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      logger.Logger
}

// Dial conecta, abre un canal y declara el exchange (durable).
func Dial(rawURL string, log logger.Logger) (*Publisher, error) {
	log.Info("connecting to rabbitmq", map[string]any{"url": redact(rawURL)})

	conn, err := amqp.Dial(rawURL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		ExchangeName,
		ExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info("rabbitmq exchange declared", map[string]any{"exchange": ExchangeName})
	return &Publisher{conn: conn, channel: ch, exchange: ExchangeName, log: log}, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
	}
	if m, ok := payload.(interface{ MessageID() string }); ok {
		msg.MessageId = m.MessageID()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return fmt.Errorf("publish %s: publisher closed", routingKey)
	}
	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.log.Debug("event published", map[string]any{"routing_key": routingKey})
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.log.Warn("rabbitmq channel close failed", map[string]any{"error": err})
		}
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// redact oculta la contraseña de la URL para los logs.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "amqp://***"
	}
	return u.Redacted()
}
