// File: repo/mysql/batch_for_cache.go
package mysql

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/models/entities"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TopicBatchOperationsRepository 定义了批量数据库操作的接口，
// 主要支撑浏览量回写与热榜缓存刷新这两个后台任务。
type TopicBatchOperationsRepository interface {
	// BatchUpdateTopicViewCounts 异步、并发地将 Redis 中的浏览量批量同步到 MySQL。
	// 设计目标是高吞吐量和容错性，允许在单个任务中处理大量更新，并记录但不中断因部分批次失败。
	// 回写取 GREATEST(现值, 快照值)，view_count 只增不减。
	BatchUpdateTopicViewCounts(ctx context.Context, viewCounts map[uint64]int64) error

	// GetTopicsByIDs 根据 ID 列表批量检索主题实体。
	// - 主要服务于需要一次性加载多个已知 ID 主题的场景，例如填充热榜 Redis 缓存。
	// - 使用 "WHERE id IN (...)" 进行查询。
	GetTopicsByIDs(ctx context.Context, ids []uint64) ([]*entities.Topic, error)
}

type topicBatchOperationsRepository struct {
	db          *gorm.DB
	logger      *core.ZapLogger
	viewSyncCfg config.ViewSyncConfig
}

// NewTopicBatchOperationsRepository 是 topicBatchOperationsRepository 的构造函数。
func NewTopicBatchOperationsRepository(db *gorm.DB, logger *core.ZapLogger, viewSyncCfg config.ViewSyncConfig) TopicBatchOperationsRepository {
	return &topicBatchOperationsRepository{db: db, logger: logger, viewSyncCfg: viewSyncCfg}
}

// updateItem 是一个内部结构体，用于在并发处理通道中传递 ID 和对应的浏览量。
type updateItem struct {
	ID        uint64
	ViewCount int64
}

// BatchUpdateTopicViewCounts 实现了浏览量批量同步的核心逻辑。
//
// 使用场景:
// 由后台定时任务调用，将 Redis 中缓存的主题浏览量 (viewCounts map)
// 定期、批量且并发地同步更新到 MySQL 的 topics 表中。
//
// 核心机制:
// 1. 数据分批: 根据配置 `viewSyncCfg.BatchSize` 将大量更新分割成小批次。
// 2. 并发处理: 根据配置 `viewSyncCfg.ConcurrencyLevel` 启动 worker goroutine 池处理这些批次。
// 3. 数据库更新: 每个 worker 对其批次内的数据，通过 `processBatch` 方法构建单条 SQL (CASE WHEN) 更新数据库。
//
// 设计目标:
// 高效同步数据，同时通过分批和并发控制数据库负载，保证服务稳定性。
// 允许部分批次失败（记录错误并聚合返回），以实现最终一致性。
func (r *topicBatchOperationsRepository) BatchUpdateTopicViewCounts(ctx context.Context, viewCounts map[uint64]int64) error {
	totalUpdates := len(viewCounts)
	if totalUpdates == 0 {
		r.logger.Info("BatchUpdateTopicViewCounts: 没有需要更新的主题浏览量，任务提前结束。")
		return nil
	}

	// --- 1. 加载并验证配置 ---
	batchSize := r.viewSyncCfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500 // Fallback
		r.logger.Warn("BatchUpdateTopicViewCounts: 配置 BatchSize 无效，使用默认值", zap.Int("defaultBatchSize", batchSize), zap.Int("configured", r.viewSyncCfg.BatchSize))
	}

	concurrencyLevel := r.viewSyncCfg.ConcurrencyLevel
	if concurrencyLevel <= 0 {
		concurrencyLevel = 1 // Fallback (顺序执行)
		r.logger.Warn("BatchUpdateTopicViewCounts: 配置 ConcurrencyLevel 无效，使用默认值 1", zap.Int("defaultConcurrency", concurrencyLevel), zap.Int("configured", r.viewSyncCfg.ConcurrencyLevel))
	}

	// --- 2. 数据准备与日志记录 ---
	itemsToUpdate := make([]updateItem, 0, totalUpdates)
	for id, count := range viewCounts {
		itemsToUpdate = append(itemsToUpdate, updateItem{ID: id, ViewCount: count})
	}

	totalBatches := (totalUpdates + batchSize - 1) / batchSize
	r.logger.Info("BatchUpdateTopicViewCounts: 开始并发批量更新",
		zap.Int("总数", totalUpdates),
		zap.Int("批大小", batchSize),
		zap.Int("并发数", concurrencyLevel),
		zap.Int("批次数", totalBatches),
	)

	// --- 3. 设置并发工作池 ---
	var wg sync.WaitGroup
	jobs := make(chan []updateItem, concurrencyLevel)
	results := make(chan error, totalBatches)
	overallStartTime := time.Now()

	// --- 4. 启动 Worker Goroutines ---
	for i := 0; i < concurrencyLevel; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r.logger.Debug("Worker 启动", zap.Int("workerID", workerID))
			for batch := range jobs {
				select {
				case <-ctx.Done():
					r.logger.Warn("上下文取消，Worker 停止处理", zap.Int("workerID", workerID), zap.Error(ctx.Err()))
					results <- fmt.Errorf("worker %d: context cancelled: %w", workerID, ctx.Err())
					continue
				default:
				}

				err := r.processBatch(ctx, batch, workerID)
				results <- err
			}
			r.logger.Debug("Worker 正常退出", zap.Int("workerID", workerID))
		}(i)
	}

	// --- 5. 启动分发任务 Goroutine ---
	go func() {
		defer func() {
			close(jobs)
			r.logger.Info("所有批次任务已发送完毕，jobs channel 已关闭。")
		}()

		for i := 0; i < totalUpdates; i += batchSize {
			end := i + batchSize
			if end > totalUpdates {
				end = totalUpdates
			}
			batchCopy := make([]updateItem, len(itemsToUpdate[i:end]))
			copy(batchCopy, itemsToUpdate[i:end])

			select {
			case <-ctx.Done():
				r.logger.Warn("上下文取消，停止分发更多批次任务。", zap.Error(ctx.Err()))
				return
			case jobs <- batchCopy:
			}
		}
	}()

	// --- 6. 启动收集结果 Goroutine ---
	var aggregatedErrors []error
	go func() {
		wg.Wait()
		close(results)
	}()

	// --- 7. 收集并聚合结果 ---
	for err := range results {
		if err != nil {
			aggregatedErrors = append(aggregatedErrors, err)
		}
	}

	// --- 8. 最终日志记录与返回 ---
	totalDuration := time.Since(overallStartTime)
	failedCount := len(aggregatedErrors)
	r.logger.Info("完成所有批次的主题浏览量并发更新处理。",
		zap.Duration("总耗时", totalDuration),
		zap.Int("总批次数", totalBatches),
		zap.Int("失败批次数", failedCount),
	)

	if failedCount > 0 {
		var errorStrings []string
		for _, e := range aggregatedErrors {
			errorStrings = append(errorStrings, e.Error())
		}
		finalError := fmt.Errorf("并发批量更新过程中发生错误 (%d / %d 个批次失败): %s", failedCount, totalBatches, strings.Join(errorStrings, "; "))
		r.logger.Error("并发批量更新最终结果：失败", zap.Error(finalError))
		return finalError
	}

	return nil
}

// buildViewCountAssignExpr 构建批次回写的赋值表达式及其绑定参数。
// 外层 GREATEST 保证 view_count 只增不减: Redis 计数器在数据丢失后会从零重建，
// 重建期间导出的快照可能小于 MySQL 已累计的值，直接覆盖会导致浏览量回退。
func buildViewCountAssignExpr(batch []updateItem) (string, []interface{}) {
	var sqlCase strings.Builder
	params := make([]interface{}, 0, len(batch)*2)

	sqlCase.WriteString("GREATEST(view_count, CASE id ")
	for _, item := range batch {
		sqlCase.WriteString("WHEN ? THEN ? ")
		params = append(params, item.ID, item.ViewCount)
	}
	sqlCase.WriteString("END)")

	return sqlCase.String(), params
}

// processBatch 负责处理单个批次的数据库更新。
func (r *topicBatchOperationsRepository) processBatch(ctx context.Context, batch []updateItem, workerID int) error {
	currentBatchSize := len(batch)

	ids := make([]uint64, 0, currentBatchSize)
	for _, item := range batch {
		ids = append(ids, item.ID)
	}
	assignExpr, assignParams := buildViewCountAssignExpr(batch)

	dbOperationStart := time.Now()
	err := r.db.WithContext(ctx).Model(&entities.Topic{}).
		Where("id IN ?", ids).
		Update("view_count", gorm.Expr(assignExpr, assignParams...)).Error
	dbDuration := time.Since(dbOperationStart)

	if err != nil {
		r.logger.Error("processBatch: 数据库更新批次失败",
			zap.Int("workerID", workerID),
			zap.Int("batchSize", currentBatchSize),
			zap.Duration("db耗时", dbDuration),
			zap.Error(err),
		)
		return fmt.Errorf("worker %d 处理批次 (大小 %d) 失败: %w", workerID, currentBatchSize, err)
	}

	r.logger.Debug("processBatch: 数据库更新批次成功",
		zap.Int("workerID", workerID),
		zap.Int("batchSize", currentBatchSize),
		zap.Duration("db耗时", dbDuration),
	)
	return nil
}

// GetTopicsByIDs 实现根据 ID 列表批量获取主题实体。
func (r *topicBatchOperationsRepository) GetTopicsByIDs(ctx context.Context, ids []uint64) ([]*entities.Topic, error) {
	var topics []*entities.Topic

	if len(ids) == 0 {
		r.logger.Debug("GetTopicsByIDs: ids 为空，返回空列表。")
		return topics, nil
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&topics).Error; err != nil {
		r.logger.Error("GetTopicsByIDs: 查询主题失败。", zap.Error(err))
		return nil, err
	}

	r.logger.Debug("GetTopicsByIDs: 查询主题成功。", zap.Int("找到数量", len(topics)))
	return topics, nil
}
