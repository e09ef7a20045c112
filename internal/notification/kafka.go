package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// DefaultPriceTopic is used when no topic is configured
const DefaultPriceTopic = "pizza-price-changes"

// KafkaGateway publishes notices as JSON messages keyed by pizza ID
type KafkaGateway struct {
	producer sarama.SyncProducer
	topic    string
	logger   *log.Entry
}

// NewKafkaGateway connects a synchronous producer to brokers
func NewKafkaGateway(brokers []string, topic string) (*KafkaGateway, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka notifier requires at least one broker")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return newKafkaGateway(producer, topic), nil
}

func newKafkaGateway(producer sarama.SyncProducer, topic string) *KafkaGateway {
	if topic == "" {
		topic = DefaultPriceTopic
	}
	return &KafkaGateway{
		producer: producer,
		topic:    topic,
		logger:   log.WithField("component", "kafka-gateway"),
	}
}

func (g *KafkaGateway) Notify(ctx context.Context, event PriceChangeEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := strconv.FormatUint(uint64(event.PizzaID), 10)
	msg := &sarama.ProducerMessage{
		Topic:     g.topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.ChangedAt,
	}

	partition, offset, err := g.producer.SendMessage(msg)
	if err != nil {
		g.logger.WithError(err).WithFields(log.Fields{
			"topic": g.topic,
			"key":   key,
		}).Error("failed to send price change to kafka")
		return fmt.Errorf("failed to send message: %w", err)
	}

	g.logger.WithFields(log.Fields{
		"topic":     g.topic,
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Debug("price change sent to kafka")
	return nil
}

// Close flushes and closes the producer
func (g *KafkaGateway) Close() error {
	if err := g.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
