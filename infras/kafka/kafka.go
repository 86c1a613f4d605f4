package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"poolhire/config"
	"poolhire/infras/otel"
	"poolhire/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const writeTimeout = 5 * time.Second

// Message is one event. Value is published as JSON.
type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	return kafkaGo.Message{Key: []byte(m.Key), Value: value}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

// New returns a client backed by one shared writer. Without brokers the writer is
// nil and every send is dropped.
func New(cfg *config.Config, otel otel.Otel) Client {
	client := &kafkaClientImpl{otel: otel}

	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		log.Warn().Msg("Kafka brokers not configured, events will not be published")

		return client
	}

	transport := &kafkaGo.Transport{}
	if sasl := cfg.Kafka.SASL; sasl.Username != "" {
		transport.SASL = plain.Mechanism{Username: sasl.Username, Password: sasl.Password}
	}

	// Topic is set per message; Hash keeps one booking's events on one partition.
	client.writer = &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}

	log.Info().Strs("brokers", brokers).Msg("Kafka client initialized")

	return client
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"kafka.topic": topic, "kafka.messages": len(messages)})

	if k.writer == nil || len(messages) == 0 {
		return nil
	}

	batch := make([]kafkaGo.Message, len(messages))

	for i := range messages {
		if batch[i], err = messages[i].ToKafkaMessage(); err != nil {
			return err
		}

		batch[i].Topic = topic
	}

	if err = k.writer.WriteMessages(ctx, batch...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish events")

		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("published events")

	return nil
}
