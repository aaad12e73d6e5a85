// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange so that kitchen displays, rider apps, and analytics can follow
// orders without polling the service.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// exchangeName is the topic exchange all status events go through.
// Consumers bind with patterns like "order.status.*" or
// "order.status.order_picked_up".
const exchangeName = "order.status"

// routingKey derives the topic key for a status. Status wire names may
// contain spaces ("order picked up") but a topic segment must be a single
// word, so spaces become underscores.
func routingKey(status order.Status) string {
	return exchangeName + "." + strings.ReplaceAll(status.String(), " ", "_")
}

// statusChangedMessage is the wire shape of one status event.
type statusChangedMessage struct {
	OrderID      string `json:"order_id"`
	CustomerID   string `json:"customer_id"`
	RestaurantID string `json:"restaurant_id"`
	Status       string `json:"status"`
	OccurredAt   string `json:"occurred_at"`
}

// StatusChangedPublisher implements the status event port on top of a
// RabbitMQ connection.
type StatusChangedPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewStatusChangedPublisher dials the broker and declares the durable topic
// exchange. The caller owns the returned publisher and must Close it.
func NewStatusChangedPublisher(url string) (*StatusChangedPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &StatusChangedPublisher{conn: conn, ch: ch}, nil
}

// Publish emits one status change event with the routing key
// "order.status.<status>", where multi-word statuses are underscored.
func (p *StatusChangedPublisher) Publish(ctx context.Context, event ports.OrderStatusChanged) error {
	body, err := json.Marshal(statusChangedMessage{
		OrderID:      event.OrderID.String(),
		CustomerID:   event.CustomerID.String(),
		RestaurantID: event.RestaurantID.String(),
		Status:       event.Status.String(),
		OccurredAt:   event.OccurredAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		exchangeName,
		routingKey(event.Status),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

// Close releases the channel and the connection.
func (p *StatusChangedPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
