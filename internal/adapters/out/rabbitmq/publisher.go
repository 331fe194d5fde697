// Package rabbitmq publishes order lifecycle events to a topic exchange.
// Each event is one persistent JSON message routed by its name, e.g. "order.assigned".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"fleet/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const contentType = "application/json"

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	timeout  time.Duration

	mu sync.Mutex // amqp channels are not safe for concurrent publishing
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	p := NewPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

// NewPublisher wraps an already opened channel. The exchange must exist.
func NewPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		timeout:  5 * time.Second,
	}
}

type eventMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OrderID    string    `json:"orderId"`
	DriverID   *string   `json:"driverId,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newEventMessage(e order.Event) eventMessage {
	msg := eventMessage{
		ID:         e.ID.String(),
		Name:       string(e.Name),
		OrderID:    e.OrderID.String(),
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.DriverID != nil {
		id := e.DriverID.String()
		msg.DriverID = &id
	}
	return msg
}

// Publish sends every event and reports all failures together; one failed message
// does not stop the rest.
func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, e := range events {
		if err := p.publish(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("publish %s for order %s: %w", e.Name, e.OrderID, err))
		}
	}
	return errors.Join(errs...)
}

func (p *Publisher) publish(ctx context.Context, e order.Event) error {
	body, err := json.Marshal(newEventMessage(e))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.ch.PublishWithContext(ctx, p.exchange, string(e.Name), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  contentType,
		MessageId:    e.ID.String(),
		Timestamp:    e.OccurredAt.UTC(),
		Type:         string(e.Name),
		Body:         body,
		Headers: amqp.Table{
			"x-source": "fleet",
		},
	})
}

func (p *Publisher) Close() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ...order.Event) error {
	return nil
}
