package kafka

import (
	"Manorakshak/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	contentConsumer sarama.ConsumerGroup
	contentHandler  sarama.ConsumerGroupHandler
	contentTopic    string
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg config.KafkaConfig, contentHandler *ContentHandler) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg)

	contentConsumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.Content.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		contentConsumer: contentConsumer,
		contentHandler:  contentHandler,
		contentTopic:    cfg.Content.Topic,
	}, nil
}

// Start 启动所有消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	// 启动 Content Consumer
	go func() {
		log.Info("Content consumer started", "topic", m.contentTopic)
		for {
			if err := m.contentConsumer.Consume(ctx, []string{m.contentTopic}, m.contentHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		for err := range m.contentConsumer.Errors() {
			log.Error("content consumer error", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.contentConsumer.Close(); err != nil {
		log.Error("Failed to close content consumer", "err", err)
	}
	return nil
}
