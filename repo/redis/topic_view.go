package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/constant"
)

// TopicViewRepository 定义了与主题浏览、排名相关的 Redis 操作接口。
// - 目标: 提供高性能的接口来处理主题浏览计数、维护排行榜以及向 MySQL 回写浏览量。
type TopicViewRepository interface {
	// IncrementViewCount 原子性地增加指定主题的浏览量，并更新其在排行榜中的分数。
	// - 每次调用严格计数 +1，详情页的每次成功读取都计入一次浏览。
	// - 使用 Lua 脚本保证计数器 (`viewCountKey`) 和 ZSet (`topicRankKey`) 的原子性更新。
	IncrementViewCount(ctx context.Context, topicID uint64) error

	// GetAllViewCounts 使用 SCAN 命令分批获取 Redis 中所有主题的浏览量计数。
	// - 目的是安全、高效地获取全量浏览量数据，作为同步到 MySQL 的数据源。
	// - 使用 SCAN 避免一次性 KEYS 操作阻塞 Redis，MGET 批量获取提高效率。
	GetAllViewCounts(ctx context.Context) (map[uint64]int64, error)
}

// topicViewRepository 是 TopicViewRepository 接口的 Redis 实现。
type topicViewRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	viewSyncCfg config.ViewSyncConfig // 浏览量同步相关配置，包括 ScanBatchSize
}

// NewTopicViewRepository 创建 TopicViewRepository 实例。
func NewTopicViewRepository(redisClient *redis.Client, logger *core.ZapLogger, viewSyncCfg config.ViewSyncConfig) TopicViewRepository {
	return &topicViewRepository{
		redisClient: redisClient,
		logger:      logger,
		viewSyncCfg: viewSyncCfg,
	}
}

// IncrementViewCount 实现增加主题浏览量的逻辑。
// Lua 脚本一次完成计数自增与排行榜分数更新，两者不会出现中间状态。
func (r *topicViewRepository) IncrementViewCount(ctx context.Context, topicID uint64) error {
	viewCountKey := fmt.Sprintf("%s%d", constant.TopicViewCountPrefix, topicID)
	topicsRankKey := constant.TopicsRankKey

	luaScript := redis.NewScript(`
        local viewCount = redis.call("INCR", KEYS[1])
        redis.call("ZADD", KEYS[2], viewCount, ARGV[1])
        return viewCount
    `)

	_, err := luaScript.Run(ctx, r.redisClient, []string{viewCountKey, topicsRankKey}, topicID).Result()
	if err != nil {
		r.logger.Error("Lua 脚本执行失败：增加浏览量和更新排名", zap.Error(err), zap.Uint64("topicID", topicID))
		return fmt.Errorf("原子性增加浏览量失败 (TopicID: %d): %w", topicID, err)
	}

	r.logger.Debug("成功增加浏览量并更新排名", zap.Uint64("topicID", topicID))
	return nil
}

// GetAllViewCounts 使用 SCAN 命令安全地迭代并获取所有主题的浏览量。
// 此方法主要用于定时任务，将 Redis 中的全量浏览数据同步到持久化存储（如 MySQL）。
func (r *topicViewRepository) GetAllViewCounts(ctx context.Context) (map[uint64]int64, error) {
	viewCounts := make(map[uint64]int64)
	var cursor uint64 = 0 // SCAN 命令的初始游标
	matchPattern := constant.TopicViewCountPrefix + "*"
	// 从配置中读取 scanCount，并提供 fallback。
	scanCount := r.viewSyncCfg.ScanBatchSize
	if scanCount <= 0 {
		scanCount = 1000
		r.logger.Warn("GetAllViewCounts: 配置中的 ScanBatchSize 无效或为零，使用默认值。",
			zap.Int64("defaultScanBatchSize", scanCount),
			zap.Int64("configuredScanBatchSize", r.viewSyncCfg.ScanBatchSize),
		)
	}

	r.logger.Info("开始扫描 Redis 获取所有主题浏览量",
		zap.String("pattern", matchPattern),
		zap.Int64("scan_batch_size", scanCount),
	)
	startTime := time.Now()

	// 使用 for 循环和 SCAN 命令迭代，直到游标返回 0，表示遍历完成。
	for {
		keys, nextCursor, err := r.redisClient.Scan(ctx, cursor, matchPattern, scanCount).Result()
		if err != nil {
			r.logger.Error("执行 Redis SCAN 命令失败",
				zap.Error(err),
				zap.Uint64("cursor", cursor),
				zap.String("pattern", matchPattern),
			)
			return nil, fmt.Errorf("扫描 Redis Keys 失败 (模式: %s): %w", matchPattern, err)
		}

		if len(keys) > 0 {
			r.logger.Debug("SCAN 批次获取到 Keys", zap.Int("count", len(keys)), zap.Uint64("current_scan_cursor", cursor))

			values, mgetErr := r.redisClient.MGet(ctx, keys...).Result()
			if mgetErr != nil {
				r.logger.Error("执行 Redis MGET 命令批量获取浏览量失败",
					zap.Error(mgetErr),
					zap.Strings("keys_in_batch", keys),
				)
				return nil, fmt.Errorf("批量获取浏览量值失败 (%d keys): %w", len(keys), mgetErr)
			}

			for i, key := range keys {
				topicIDStr := strings.TrimPrefix(key, constant.TopicViewCountPrefix)
				topicID, parseErr := strconv.ParseUint(topicIDStr, 10, 64)
				if parseErr != nil {
					r.logger.Error("从 Redis Key 解析 TopicID 失败，已跳过该 Key。",
						zap.Error(parseErr),
						zap.String("key", key),
					)
					continue
				}

				viewCount := int64(0)
				if i < len(values) && values[i] != nil {
					if valueStr, ok := values[i].(string); ok && valueStr != "" {
						parsedCount, parseCountErr := strconv.ParseInt(valueStr, 10, 64)
						if parseCountErr != nil {
							r.logger.Error("解析 Redis 中的浏览量值失败，该主题浏览量将视为 0。",
								zap.Error(parseCountErr),
								zap.String("key", key),
								zap.String("value_str", valueStr),
							)
						} else {
							viewCount = parsedCount
						}
					} else {
						r.logger.Warn("Redis Key 的值类型不是有效字符串或为空，该主题浏览量将视为 0。",
							zap.String("key", key),
							zap.Any("value", values[i]),
						)
					}
				} else {
					r.logger.Warn("MGET 未能获取到 Key 的值 (可能已删除或类型错误)，该主题浏览量将视为 0。",
						zap.String("key", key),
						zap.Int("value_index", i),
					)
				}
				viewCounts[topicID] = viewCount
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	duration := time.Since(startTime)
	r.logger.Info("完成扫描 Redis 主题浏览量",
		zap.Int("total_unique_topics_found", len(viewCounts)),
		zap.Duration("duration", duration),
	)
	return viewCounts, nil
}
