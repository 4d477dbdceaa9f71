// Package mqx publishes pipeline lifecycle events to RabbitMQ.
package mqx

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewRabbitPublisher(url string, exchange string) (*RabbitPublisher, error) {
	exchange = lo.Ternary(exchange != "", exchange, "uploads")
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
		DeliveryMode: amqp.Persistent,
	})
}

func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// UploadEvent is the payload for upload.completed / upload.failed messages,
// consumed by downstream collaborators (AI summary, notification jobs).
type UploadEvent struct {
	TenantID string `json:"tenant_id"`
	UploadID string `json:"upload_id"`
	Status   string `json:"status"`
	RowCount int    `json:"row_count"`
	Error    string `json:"error,omitempty"`
}

// PublishUploadEvent marshals and publishes an UploadEvent; a nil publisher is a no-op.
func PublishUploadEvent(ctx context.Context, pub Publisher, routingKey string, evt UploadEvent) error {
	if pub == nil {
		return nil
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return pub.Publish(ctx, routingKey, b)
}
