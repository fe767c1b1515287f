package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// EventPublisher emits domain events (bank.*, exam.*, schedule.*,
// submission.*) on a topic exchange. A nil publisher is valid and drops
// every event, so the service runs without a broker.
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewEventPublisher(amqpURL, exchange string) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
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
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends one event using the event type as the routing key.
func (p *EventPublisher) Publish(eventType string, payload any) error {
	if p == nil {
		return nil
	}
	event := map[string]any{
		"type":      eventType,
		"payload":   payload,
		"timestamp": time.Now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.channel.Publish(p.exchange, eventType, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("failed to publish event %s: %v", eventType, err)
	}
	return err
}

func (p *EventPublisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
