package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"sorabora/config"
	"sorabora/infras/otel"
	"sorabora/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Producer publishes domain events. Publication is best-effort everywhere it
// is used; callers log failures and move on.
type Producer interface {
	Publish(ctx context.Context, key string, value any) error
}

type producerImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Producer {
	if !cfg.Events.Enable || len(cfg.Events.Brokers) == 0 {
		log.Info().Msg("Event publication disabled, using noop producer")

		return &noopProducer{}
	}

	writer := &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(cfg.Events.Brokers...),
		Topic:    cfg.Events.Topic,
		Balancer: &kafkaGo.LeastBytes{},
	}

	return &producerImpl{
		writer: writer,
		otel:   ot,
	}
}

func (p *producerImpl) Publish(ctx context.Context, key string, value any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal event payload")

		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to publish event")

		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

type noopProducer struct{}

func (n *noopProducer) Publish(_ context.Context, _ string, _ any) error {
	return nil
}
