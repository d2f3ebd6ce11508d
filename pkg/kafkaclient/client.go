package kafkaclient

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines the interface for a Kafka message writer.
// This allows for easy mocking in unit tests.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ExportEvent describes one finished export run.
type ExportEvent struct {
	City     string `json:"city"`
	Count    int    `json:"count"`
	Path     string `json:"path"`
	Archived bool   `json:"archived"`
}

// Publisher emits export events to a Kafka topic.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a Publisher for the given broker and topic.
func NewPublisher(broker, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Publisher{writer: writer}
}

// PublishExport sends one event, keyed by city so runs for the same city land
// on the same partition.
func (p *Publisher) PublishExport(ctx context.Context, event ExportEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	log.Printf("Publishing export event: city=%s, count=%d", event.City, event.Count)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.City),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if err := p.writer.Close(); err != nil {
		log.Printf("Failed to close Kafka writer: %v", err)
		return err
	}
	return nil
}
