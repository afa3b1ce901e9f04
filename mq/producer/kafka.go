package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
// - 生产者未初始化 (未配置 brokers) 时静默丢弃，调用方无需感知
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	if p == nil {
		return nil
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendTopicCreatedEvent 发送新主题创建事件到 Kafka
// - 意图: 将新创建的主题广播给下游（搜索索引、推荐、审计等）
// - 输入: ctx context.Context 上下文, topicData events.TopicData 主题核心数据
// - 输出: error 错误信息
func (p *KafkaProducer) SendTopicCreatedEvent(ctx context.Context, topicData events.TopicData) error {
	if p == nil {
		return nil
	}

	event := events.TopicCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Topic:     topicData,
	}

	return p.SendEvent(ctx, p.topics.TopicCreated, event)
}

// SendPostCreatedEvent 发送新回帖创建事件到 Kafka
// - 意图: 将新回帖广播给下游（通知服务向主题作者推送等）
// - 输入: ctx context.Context 上下文, postData events.PostData 回帖核心数据
// - 输出: error 错误信息
func (p *KafkaProducer) SendPostCreatedEvent(ctx context.Context, postData events.PostData) error {
	if p == nil {
		return nil
	}

	event := events.PostCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postData,
	}

	return p.SendEvent(ctx, p.topics.PostCreated, event)
}

// SendTopicDeleteEvent 发送主题删除事件到 Kafka
// - 意图: 通知下游清理与该主题相关的派生数据（索引、通知等）
// - 输入: ctx context.Context 上下文, topicID uint64 主题ID
// - 输出: error 错误信息
func (p *KafkaProducer) SendTopicDeleteEvent(ctx context.Context, topicID uint64) error {
	if p == nil {
		return nil
	}

	event := events.TopicDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		TopicID:   topicID,
	}

	return p.SendEvent(ctx, p.topics.TopicDeleted, event)
}
