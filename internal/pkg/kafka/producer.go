package kafka

import (
	"Inkwell/internal/api/config"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Producer publishes engagement events. Publishing is best-effort: a
// broker failure is logged, never surfaced to the request path.
type Producer interface {
	PublishEngagement(ctx context.Context, event *EngagementEvent)
	Close() error
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	p, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return &producerImpl{
		producer: p,
		topic:    cfg.KafkaConsumer.EngagementTopic,
	}, nil
}

func (s *producerImpl) PublishEngagement(ctx context.Context, event *EngagementEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.ErrorContext(ctx, "marshal engagement event failed", "type", event.Type, "err", err)
		return
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.PostID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		log.ErrorContext(ctx, "publish engagement event failed", "type", event.Type, "err", err)
	}
}

func (s *producerImpl) Close() error {
	return s.producer.Close()
}
