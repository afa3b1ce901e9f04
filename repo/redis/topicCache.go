package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/models/entities"
)

// Cache 定义了主题相关的缓存操作接口。
// - 目标: 提供 Redis 缓存层，加速热点数据的访问，减轻数据库压力。
// - 包括: 热榜主题列表缓存、排名查询等。
type Cache interface {
	// GetTopicRank 获取指定主题在热榜 ZSet (`HotTopicsRankKey`) 中的排名（0-based, 降序）。
	// - 返回 -1 表示主题不在榜单中。
	GetTopicRank(ctx context.Context, topicID uint64) (int64, error)

	// GetTopicsByRange 从热榜 ZSet (`HotTopicsRankKey`) 获取指定排名范围内的主题 ID 列表。
	// - 用于分页加载热门主题列表。
	// - start, stop 是基于 0 的排名索引。
	GetTopicsByRange(ctx context.Context, start, stop int64) ([]uint64, error)

	// GetTopics 从 Redis Hash (`TopicsHashKey`) 中批量获取主题实体。
	// - 根据主题 ID 列表，高效获取缓存的主题信息。
	// - 返回的主题实体中 ViewCount 反映的是缓存刷新时的快照值。
	// - 未命中的 ID 被跳过，调用方按需回源数据库。
	GetTopics(ctx context.Context, topicIDs []uint64) ([]*entities.Topic, error)
}

// cacheImpl 是 Cache 接口的 Redis 实现。
type cacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewCache 是 cacheImpl 的构造函数。
func NewCache(
	redisClient *redis.Client,
	logger *core.ZapLogger,
) Cache {
	return &cacheImpl{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetTopicRank 实现获取主题排名。
// 排名是 0-based，分数越高，排名越靠前 (即 ZREVRANK 的结果)。
func (c *cacheImpl) GetTopicRank(ctx context.Context, topicID uint64) (int64, error) {
	key := constant.HotTopicsRankKey
	// Sorted Set 中的成员以字符串形式存储
	member := fmt.Sprintf("%d", topicID)

	rank, err := c.redisClient.ZRevRank(ctx, key, member).Result()
	if err != nil {
		// redis.Nil 表示成员不存在于 ZSet 中
		if errors.Is(err, redis.Nil) {
			c.logger.Info("主题不在热榜 ZSet 中 (或 ZSet 本身不存在)",
				zap.Uint64("topicID", topicID),
				zap.String("key", key),
			)
			// 按接口约定返回 -1，此时没有发生 Redis 通信错误
			return -1, nil
		}
		c.logger.Error("从 Redis 获取主题排名失败",
			zap.Error(err),
			zap.Uint64("topicID", topicID),
			zap.String("key", key),
		)
		return -1, fmt.Errorf("获取主题(ID: %d)在热榜(key: %s)中的排名失败: %w", topicID, key, err)
	}

	c.logger.Debug("成功从 Redis 获取主题排名",
		zap.String("key", key),
		zap.String("member_topicID", member),
		zap.Int64("rank", rank),
	)
	return rank, nil
}

// GetTopicsByRange 实现按排名范围获取主题 ID。
// start 和 stop 是 0-based 的排名索引，按分数从高到低排列。
func (c *cacheImpl) GetTopicsByRange(ctx context.Context, start, stop int64) ([]uint64, error) {
	key := constant.HotTopicsRankKey

	// 基本范围校验，避免无效查询
	if start < 0 {
		c.logger.Warn("GetTopicsByRange: start 参数为负数，视为无效请求，返回空列表。",
			zap.Int64("start", start),
			zap.Int64("stop", stop),
		)
		return []uint64{}, nil
	}
	if start > stop && stop != -1 { // stop 为 -1 表示到 ZSet 末尾
		c.logger.Info("GetTopicsByRange: start 排名大于 stop 排名，这是一个无效范围，返回空列表。",
			zap.Int64("start", start),
			zap.Int64("stop", stop),
			zap.String("key", key),
		)
		return []uint64{}, nil
	}

	idStrs, err := c.redisClient.ZRevRange(ctx, key, start, stop).Result()
	if err != nil {
		// ZSet 不存在或范围超出实际大小时返回 redis.Nil，不视为操作性错误
		if errors.Is(err, redis.Nil) {
			c.logger.Info("按排名范围获取主题 ID：热榜 ZSet 为空/不存在，或请求的范围超出实际大小，返回空列表。",
				zap.Int64("start", start),
				zap.Int64("stop", stop),
				zap.String("key", key),
			)
			return []uint64{}, nil
		}
		c.logger.Error("从 Redis ZRevRange 按排名范围获取主题 ID 失败",
			zap.Error(err),
			zap.Int64("start", start),
			zap.Int64("stop", stop),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("获取排名 %d-%d 的主题 ID 失败 (key: %s): %w", start, stop, key, err)
	}

	if len(idStrs) == 0 {
		return []uint64{}, nil
	}

	// 将获取到的字符串 ID 列表转换为 uint64 列表
	ids := make([]uint64, 0, len(idStrs))
	parseErrors := 0
	for _, idStr := range idStrs {
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			// ZSet 数据被污染时跳过该成员，保证其他有效 ID 仍能被处理
			c.logger.Warn("解析 ZSet 中的主题 ID 字符串失败，已跳过该 ID。",
				zap.Error(parseErr),
				zap.String("idStr", idStr),
				zap.String("rankKey", key),
			)
			parseErrors++
			continue
		}
		ids = append(ids, id)
	}

	if parseErrors > 0 {
		c.logger.Warn("在转换从 ZSet 获取的主题 ID 时，部分 ID 解析失败。",
			zap.Int("totalFromZSet", len(idStrs)),
			zap.Int("parseErrors", parseErrors),
			zap.Int("successfulConversions", len(ids)),
		)
	}

	return ids, nil
}

// GetTopics 从 Redis Hash (`TopicsHashKey`) 中批量获取主题实体。
// - 返回的主题实体中 ViewCount 反映的是 CacheHotTopicsToRedis 任务缓存刷新时的快照值。
func (c *cacheImpl) GetTopics(ctx context.Context, topicIDs []uint64) ([]*entities.Topic, error) {
	if len(topicIDs) == 0 {
		c.logger.Debug("GetTopics: 请求的 topicIDs 列表为空，返回空主题列表。")
		return []*entities.Topic{}, nil
	}

	// HMGET 返回 []interface{}，顺序与请求的 fields 一致，不存在的 field 为 nil
	hashKey := constant.TopicsHashKey
	fields := make([]string, len(topicIDs))
	for i, id := range topicIDs {
		fields[i] = fmt.Sprintf("%d", id)
	}

	values, err := c.redisClient.HMGet(ctx, hashKey, fields...).Result()
	if err != nil {
		c.logger.Error("从 Redis Hash 批量获取主题失败 (HMGET 执行错误)",
			zap.Error(err),
			zap.String("hashKey", hashKey),
			zap.Int("idCount", len(topicIDs)),
		)
		return nil, fmt.Errorf("批量获取主题缓存 (key: %s) 失败: %w", hashKey, err)
	}

	topics := make([]*entities.Topic, 0, len(topicIDs))
	cacheMissCount := 0
	unmarshalErrorCount := 0

	for i, val := range values {
		requestedTopicID := topicIDs[i]

		if val == nil {
			cacheMissCount++
			c.logger.Debug("主题 Hash 缓存未命中",
				zap.Uint64("topicID", requestedTopicID),
				zap.String("hashKey", hashKey),
				zap.String("field", fields[i]),
			)
			continue
		}

		jsonStr, ok := val.(string)
		if !ok {
			// 值不是字符串说明缓存数据被意外修改
			unmarshalErrorCount++
			c.logger.Error("主题 Hash 缓存中的值类型不是预期的字符串，跳过该主题",
				zap.Uint64("topicID", requestedTopicID),
				zap.String("hashKey", hashKey),
				zap.String("field", fields[i]),
				zap.Any("valueType", fmt.Sprintf("%T", val)),
			)
			continue
		}

		var topic entities.Topic
		if jsonErr := json.Unmarshal([]byte(jsonStr), &topic); jsonErr != nil {
			unmarshalErrorCount++
			c.logger.Error("反序列化主题 Hash 缓存数据失败，跳过该主题",
				zap.Error(jsonErr),
				zap.Uint64("topicID", requestedTopicID),
				zap.String("hashKey", hashKey),
				zap.String("field", fields[i]),
			)
			continue
		}

		topics = append(topics, &topic)
	}

	c.logger.Debug("批量获取主题 Hash 缓存完成",
		zap.String("hashKey", hashKey),
		zap.Int("requested_id_count", len(topicIDs)),
		zap.Int("found_in_cache_count", len(topics)),
		zap.Int("cache_miss_count", cacheMissCount),
		zap.Int("unmarshal_error_count", unmarshalErrorCount),
	)
	return topics, nil
}
