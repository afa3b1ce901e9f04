package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/models/events"
	"github.com/Xushengqwer/forum_service/service"
)

// todo  未配置死信队列

// UserPurgeHandler 消费用户服务发布的注销事件，
// 将该用户在论坛中的全部内容（主题、回帖、点赞、配图）级联清理。
type UserPurgeHandler struct {
	logger       *core.ZapLogger
	topicService service.TopicService
}

func NewUserPurgeHandler(logger *core.ZapLogger, topicService service.TopicService) *UserPurgeHandler {
	return &UserPurgeHandler{
		logger:       logger,
		topicService: topicService,
	}
}

func (h *UserPurgeHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("UserPurgeHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.UserDeactivatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("UserPurgeHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	if event.UserID == "" {
		h.logger.Warn("UserPurgeHandler: 事件缺少 UserID，忽略该消息", zap.String("event_id", event.EventID))
		return nil
	}

	h.logger.Info("UserPurgeHandler: 成功解析用户注销消息",
		zap.String("event_id", event.EventID),
		zap.String("user_id", event.UserID))

	// 清理涉及多表删除，给一个比普通请求更宽裕的超时
	purgeCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	err := h.topicService.PurgeUserContent(purgeCtx, event.UserID)
	if err != nil {
		h.logger.Error("UserPurgeHandler: 清理用户论坛内容失败", zap.Error(err), zap.String("user_id", event.UserID))
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("UserPurgeHandler: 用户没有可清理的内容", zap.String("user_id", event.UserID))
			return nil // 不再重试
		}
		return fmt.Errorf("UserPurgeHandler: 调用 PurgeUserContent 失败: %w", err)
	}

	h.logger.Info("UserPurgeHandler: 成功清理用户论坛内容", zap.String("user_id", event.UserID))
	return nil
}
