// Package amqp implements the NotificationTransport port on RabbitMQ.
// Deployments that fan events out to other services — a notification
// mailer, an analytics sink — run in this mode instead of the in-process
// websocket hub.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the fanout exchange order lifecycle events land on.
const ExchangeName = "order_events_fanout"

// Channel is the slice of the AMQP channel API the publisher needs.
// Narrowed to an interface so tests can stand in for a live broker.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// ChannelFactory hands out channels; implemented by Connection.
type ChannelFactory interface {
	Channel() (Channel, error)
}

// Connection wraps a live broker connection.
type Connection struct {
	conn *amqp.Connection
}

// Dial connects to the broker at the given amqp:// URL.
func Dial(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	return &Connection{conn: conn}, nil
}

// Channel opens a fresh channel on the connection.
func (c *Connection) Channel() (Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return ch, nil
}

// Close shuts the underlying connection down.
func (c *Connection) Close() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}

// Publisher fans order lifecycle events out on a durable fanout exchange.
// Implements ports.NotificationTransport.
type Publisher struct {
	factory ChannelFactory
}

// NewPublisher creates a publisher over the given connection.
func NewPublisher(factory ChannelFactory) *Publisher {
	return &Publisher{factory: factory}
}

// Publish declares the exchange and sends the event as a JSON message.
// Fanout ignores routing keys; every bound queue gets every event, the
// broker-side equivalent of the websocket broadcast.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	ch, err := p.factory.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(ExchangeName, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, ExchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
