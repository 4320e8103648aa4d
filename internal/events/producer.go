package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/rookgm/chefbazaar/internal/models"
)

// Publisher publishes order events to kafka
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates sync producer that waits for all in-sync replicas
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return producer, nil
}

// NewPublisher creates new Publisher instance
func NewPublisher(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishOrderPaid publishes event keyed by tracking id, so events of one order
// land in the same partition
func (p *Publisher) PublishOrderPaid(_ context.Context, event models.OrderPaidEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order paid event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.TrackingID),
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send order paid event: %w", err)
	}

	return nil
}

// Close closes underlying producer
func (p *Publisher) Close() error {
	return p.producer.Close()
}
