// Package notify delivers workflow events to the notification gateway. The
// dispatcher decouples command handlers from the transport: handlers enqueue
// events and a background worker publishes them, so a slow or unavailable
// gateway never stalls an order transition.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"replenish/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher publishes workflow events to a Kafka topic, keyed by order ID
// so that all events of one order land on the same partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish marshals the event as JSON and writes it to the topic.
func (p *KafkaPublisher) Publish(ctx context.Context, event ports.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
