package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sharath018/venue-booking-backend/config"
)

// AuditPublisher streams audit entries to Kafka.
type AuditPublisher struct {
	writer *kafka.Writer
}

// NewAuditPublisher returns nil when no brokers are configured.
func NewAuditPublisher(cfg *config.Config) *AuditPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &AuditPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaAuditTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           50 * time.Millisecond,
			WriteTimeout:           5 * time.Second,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes one message keyed for per-entry ordering.
func (p *AuditPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.writer.Topic, err)
	}
	return nil
}

// Close flushes pending writes.
func (p *AuditPublisher) Close() error {
	return p.writer.Close()
}
