package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/repo/redis"
)

// HotTopicService 定义了热门主题榜单查询的业务逻辑接口。
type HotTopicService interface {
	// GetHotTopicsByCursor 以游标方式获取热门主题列表。
	// - lastTopicID 为 nil 表示首次加载，否则从该主题在榜单中的下一名开始。
	// - 榜单与主题数据来自定时任务维护的 Redis 快照；Hash 未命中的主题回源数据库补齐。
	GetHotTopicsByCursor(ctx context.Context, lastTopicID *uint64, limit int) (*vo.ListHotTopicsByCursorResponse, error)
}

// hotTopicService 是 HotTopicService 接口的具体实现。
type hotTopicService struct {
	topicCache redis.Cache                          // 热榜 ZSet 与主题 Hash 的读取接口
	topicBatch mysql.TopicBatchOperationsRepository // 缓存未命中时的数据库回源
	logger     *core.ZapLogger
}

// NewHotTopicService 是 hotTopicService 的构造函数。
func NewHotTopicService(
	topicCache redis.Cache,
	topicBatch mysql.TopicBatchOperationsRepository,
	logger *core.ZapLogger,
) HotTopicService {
	return &hotTopicService{
		topicCache: topicCache,
		topicBatch: topicBatch,
		logger:     logger,
	}
}

// GetHotTopicsByCursor 实现游标方式获取热门主题列表。
func (s *hotTopicService) GetHotTopicsByCursor(ctx context.Context, lastTopicID *uint64, limit int) (*vo.ListHotTopicsByCursorResponse, error) {
	if limit <= 0 {
		s.logger.Warn("GetHotTopicsByCursor: 请求的 limit 小于或等于0", zap.Int("limit", limit))
		return nil, errors.New("limit 参数必须大于0")
	}

	// 1. 计算 ZSet 范围查询的起始排名 (0-based)
	var start int64
	if lastTopicID == nil {
		start = 0
		s.logger.Debug("热门主题首次加载", zap.Int("limit", limit))
	} else {
		rank, err := s.topicCache.GetTopicRank(ctx, *lastTopicID)
		if err != nil {
			s.logger.Error("获取游标主题排名失败", zap.Error(err), zap.Uint64p("lastTopicID", lastTopicID))
			return nil, fmt.Errorf("获取主题排名失败: %w", err)
		}
		if rank == -1 {
			// 榜单每次刷新都整体重建，游标主题掉榜后无法继续翻页，提示客户端从头加载
			s.logger.Warn("游标主题已不在热榜中", zap.Uint64p("lastTopicID", lastTopicID))
			return nil, fmt.Errorf("提供的游标主题(ID: %d)已不在热门榜单中，请刷新", *lastTopicID)
		}
		start = rank + 1
		s.logger.Debug("热门主题分页加载", zap.Uint64p("lastTopicID", lastTopicID), zap.Int64("startRank", start), zap.Int("limit", limit))
	}

	stop := start + int64(limit) - 1

	// 2. 从热榜 ZSet 获取排名范围内的主题 ID 列表
	topicIDs, err := s.topicCache.GetTopicsByRange(ctx, start, stop)
	if err != nil {
		s.logger.Error("从缓存按排名范围获取主题 ID 失败", zap.Error(err), zap.Int64("start", start), zap.Int64("stop", stop))
		return nil, fmt.Errorf("获取主题 ID 列表失败: %w", err)
	}

	if len(topicIDs) == 0 {
		// 已到达榜单末尾
		return &vo.ListHotTopicsByCursorResponse{
			Topics:     []*vo.TopicResponse{},
			NextCursor: nil,
		}, nil
	}

	// 3. 从主题 Hash 缓存批量获取实体，未命中的 ID 回源数据库补齐
	topics, err := s.topicCache.GetTopics(ctx, topicIDs)
	if err != nil {
		s.logger.Error("从缓存批量获取主题实体失败", zap.Error(err), zap.Any("topicIDs", topicIDs))
		return nil, fmt.Errorf("获取主题数据失败: %w", err)
	}

	if len(topics) < len(topicIDs) {
		topics, err = s.backfillFromDatabase(ctx, topicIDs, topics)
		if err != nil {
			return nil, err
		}
	}

	// 4. 确定下一页游标。
	//    游标基于从 ZSet 取得的 ID 序列：取满 limit 条说明后面可能还有数据。
	var nextCursor *uint64
	if len(topicIDs) == limit {
		lastReturnedID := topicIDs[len(topicIDs)-1]
		nextCursor = &lastReturnedID
	}

	return &vo.ListHotTopicsByCursorResponse{
		Topics:     vo.MapTopicsToTopicResponsesVO(topics),
		NextCursor: nextCursor,
	}, nil
}

// backfillFromDatabase 用数据库数据补齐 Hash 缓存未命中的主题，并恢复 ZSet 的排名顺序。
// 回源失败不中断请求，缺失的主题从结果中剔除。
func (s *hotTopicService) backfillFromDatabase(ctx context.Context, orderedIDs []uint64, cached []*entities.Topic) ([]*entities.Topic, error) {
	topicByID := make(map[uint64]*entities.Topic, len(orderedIDs))
	for _, topic := range cached {
		if topic == nil {
			continue
		}
		topicByID[topic.ID] = topic
	}

	missingIDs := make([]uint64, 0, len(orderedIDs)-len(cached))
	for _, id := range orderedIDs {
		if _, exists := topicByID[id]; !exists {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		s.logger.Info("热榜主题 Hash 缓存部分未命中，回源数据库",
			zap.Int("requested", len(orderedIDs)),
			zap.Int("missing", len(missingIDs)),
		)
		dbTopics, err := s.topicBatch.GetTopicsByIDs(ctx, missingIDs)
		if err != nil {
			s.logger.Error("热榜主题数据库回源失败", zap.Error(err), zap.Any("missingIDs", missingIDs))
			return nil, fmt.Errorf("获取主题数据失败: %w", err)
		}
		for _, topic := range dbTopics {
			if topic == nil {
				continue
			}
			topicByID[topic.ID] = topic
		}
	}

	// 按 ZSet 的排名顺序重组，彻底缺失的主题（缓存与数据库都没有）跳过
	ordered := make([]*entities.Topic, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		if topic, exists := topicByID[id]; exists {
			ordered = append(ordered, topic)
		}
	}
	return ordered, nil
}
