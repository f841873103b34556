package kafka

import (
	"Inkwell/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager owns the engagement consumer group.
type ConsumerManager struct {
	engagementConsumer sarama.ConsumerGroup
	engagementHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, handler *NotificationsHandler) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	consumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaConsumer.EngagementGroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		engagementConsumer: consumer,
		engagementHandler:  handler,
	}, nil
}

// Start blocks until ctx is cancelled, then closes the consumer.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaConsumer.EngagementTopic
		log.Info("Engagement consumer started", "topic", topic)
		for {
			if err := m.engagementConsumer.Consume(ctx, []string{topic}, m.engagementHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.engagementConsumer.Close(); err != nil {
		log.Error("Failed to close engagement consumer", "err", err)
	}

	return nil
}
